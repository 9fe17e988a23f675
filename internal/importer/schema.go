package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for calendar import.
type ImportSchema struct {
	Entries []EntryImport `json:"entries"`
}

// EntryImport defines one calendar entry in the import file. Times are local
// clock strings; anything the planner's time formats accept works here too.
type EntryImport struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Color     string `json:"color,omitempty"`
	Completed bool   `json:"completed,omitempty"`
	Mood      *int   `json:"mood,omitempty"`
}

// LoadFile reads and decodes an import file.
func LoadFile(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
