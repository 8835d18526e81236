package llm

import (
	"errors"
	"strings"
)

// StructuredRequest carries one structured-output call to the model API.
// SchemaName and MaxOutputTokens are optional; zero values fall back to the
// client defaults.
type StructuredRequest struct {
	SystemPrompt    string
	UserInput       string
	Schema          map[string]any
	SchemaName      string
	MaxOutputTokens int
}

func (r StructuredRequest) validate() error {
	if strings.TrimSpace(r.SystemPrompt) == "" {
		return errors.New("systemPrompt must not be blank")
	}
	if strings.TrimSpace(r.UserInput) == "" {
		return errors.New("userInput must not be blank")
	}
	if r.Schema == nil {
		return errors.New("schema must not be nil")
	}
	if r.MaxOutputTokens < 0 {
		return errors.New("maxOutputTokens must not be negative")
	}
	return nil
}
