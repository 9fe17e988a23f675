package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskWeeklyPlan requests a full one-week self-care schedule.
	TaskWeeklyPlan TaskType = "weekly_plan"
	// TaskSwap requests a single replacement activity for one draft slot.
	TaskSwap TaskType = "swap"
)

// Backend names a generation provider implementation.
type Backend string

const (
	BackendOllama Backend = "ollama"
	BackendGemini Backend = "gemini"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	Backend      Backend
	LogCalls     bool
	Endpoint     string // Ollama server base URL
	Model        string
	GeminiAPIKey string
	GeminiURL    string // Gemini API base URL, overridable for tests
	TimeoutMs    int
	MaxRetries   int
	Tasks        map[TaskType]TaskConfig
}

// DefaultConfig returns a Config targeting a local Ollama instance. Plan
// generation gets a generous timeout and no automatic retries: a failed
// generation is surfaced to the user, who decides whether to rerun.
func DefaultConfig() Config {
	return Config{
		Backend:    BackendOllama,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		GeminiURL:  "https://generativelanguage.googleapis.com",
		TimeoutMs:  30000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskWeeklyPlan: {Temperature: 0.7, MaxTokens: 4096, TimeoutMs: 60000},
			TaskSwap:       {Temperature: 0.8, MaxTokens: 512, TimeoutMs: 20000},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("HAVEN_LLM_BACKEND"); v != "" {
		cfg.Backend = Backend(v)
		if cfg.Backend == BackendGemini && os.Getenv("HAVEN_LLM_MODEL") == "" {
			cfg.Model = "gemini-1.5-flash"
		}
	}
	if v := os.Getenv("HAVEN_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HAVEN_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("HAVEN_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("HAVEN_GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("HAVEN_GEMINI_URL"); v != "" {
		cfg.GeminiURL = v
	}
	if v := os.Getenv("HAVEN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("HAVEN_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskWeeklyPlan, "HAVEN_LLM_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSwap, "HAVEN_LLM_SWAP_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
