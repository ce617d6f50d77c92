package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"draftdeck/internal/catalog"
)

// openRouterProvider speaks the same chat-completions shape as the baseline
// provider against a different endpoint and model namespace.
type openRouterProvider struct {
	endpoint    string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

func newOpenRouterProvider(cfg Config, defaults *catalog.ProviderDefaults) *openRouterProvider {
	endpoint := cfg.OpenRouterEndpoint
	if endpoint == "" {
		endpoint = defaults.Endpoint
	}
	model := cfg.OpenRouterModel
	if model == "" {
		model = defaults.DefaultModel
	}
	return &openRouterProvider{
		endpoint:    endpoint,
		apiKey:      cfg.OpenRouterAPIKey,
		model:       model,
		maxTokens:   defaults.MaxTokens,
		temperature: defaults.Temperature,
		httpClient:  newHTTPClient(),
	}
}

func (p *openRouterProvider) Name() string { return "openrouter" }

func (p *openRouterProvider) generate(ctx context.Context, prompt, contextText string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage(prompt, contextText)},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + p.apiKey,
	}

	var resp chatCompletionResponse
	if err := postJSON(ctx, p.httpClient, p.endpoint, headers, reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
