package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlanRecord is one loosely-typed activity as decoded from generator output.
// Only Day and Activity are required at this layer; the rest are filled in or
// defaulted by the caller.
type PlanRecord struct {
	Day       string `json:"day"`
	Activity  string `json:"activity"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`
}

// ParseError reports that no usable structure was found in generator output.
// Raw retains the full response text for diagnostics.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing generator response: %s", e.Reason)
}

// ExtractRecords pulls a list of plan records out of arbitrary generator
// text. It scans for the first balanced JSON array or object span (code
// fences and line comments tolerated); a bare object is wrapped into a
// single-element array, which is the contract for swap responses.
func ExtractRecords(raw string) ([]PlanRecord, error) {
	cleaned := stripCodeFences(raw)
	span := extractStructuredSpan(cleaned)
	if span == "" {
		return nil, &ParseError{Raw: raw, Reason: "no JSON array or object found in response"}
	}
	if strings.HasPrefix(span, "{") {
		span = "[" + span + "]"
	}
	span = stripJSONComments(span)

	var records []PlanRecord
	if err := json.Unmarshal([]byte(span), &records); err != nil {
		return nil, &ParseError{Raw: raw, Reason: err.Error()}
	}
	if len(records) == 0 {
		return nil, &ParseError{Raw: raw, Reason: "response contained an empty list"}
	}
	return records, nil
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// extractStructuredSpan finds the first balanced [ ... ] or { ... } block,
// whichever opens first, respecting strings and escapes.
func extractStructuredSpan(s string) string {
	start := strings.IndexAny(s, "[{")
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// stripJSONComments removes C-style comments outside of JSON string values.
// Generators sometimes annotate their output despite instructions not to.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}
		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}
		if inString {
			b.WriteByte(c)
			continue
		}

		// Line comment: skip to end of line.
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}

		// Block comment: skip to closing */.
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			i += 2
			for i+1 < len(s) {
				if s[i] == '*' && s[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}
