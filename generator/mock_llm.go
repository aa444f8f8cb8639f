package generator

import (
	"context"
	"strings"
)

// MockLLM is a simple stand-in for local runs and tests; it never calls an
// external model.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	sb.WriteString("Chief complaint: synthetic note generated offline.\n\n")
	sb.WriteString("The prompt was:\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n")
	return sb.String(), nil
}
