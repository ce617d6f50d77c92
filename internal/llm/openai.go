package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"draftdeck/internal/catalog"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// openAIProvider is the baseline chat-completions adapter.
type openAIProvider struct {
	endpoint    string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

func newOpenAIProvider(cfg Config, defaults *catalog.ProviderDefaults) *openAIProvider {
	model := cfg.OpenAIModel
	if model == "" {
		model = defaults.DefaultModel
	}
	return &openAIProvider{
		endpoint:    defaults.Endpoint,
		apiKey:      cfg.OpenAIAPIKey,
		model:       model,
		maxTokens:   defaults.MaxTokens,
		temperature: defaults.Temperature,
		httpClient:  newHTTPClient(),
	}
}

func (p *openAIProvider) Name() string { return "openai" }

func (p *openAIProvider) generate(ctx context.Context, prompt, contextText string) (string, error) {
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
