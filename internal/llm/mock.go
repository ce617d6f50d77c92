package llm

import (
	"context"
	"strings"
)

// mockProvider is the deterministic fallback generator: it echoes the
// prompt and context with an explanatory notice. No randomness and no
// network, so identical input always yields identical output and tests can
// run without live credentials.
type mockProvider struct{}

func newMockProvider() *mockProvider {
	return &mockProvider{}
}

func (p *mockProvider) Name() string { return "mock" }

func (p *mockProvider) generate(_ context.Context, prompt, contextText string) (string, error) {
	var b strings.Builder
	b.WriteString("Generated content for: ")
	b.WriteString(prompt)
	b.WriteString("\n")
	if contextText != "" {
		b.WriteString("(context: ")
		b.WriteString(contextText)
		b.WriteString(")\n")
	}
	b.WriteString("\nThis is placeholder generated content. To enable real generation, set LLM_PROVIDER and the matching API key in your environment.")
	return b.String(), nil
}
