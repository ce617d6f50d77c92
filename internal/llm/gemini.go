package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"draftdeck/internal/catalog"
)

type geminiRequest struct {
	Prompt          geminiPrompt `json:"prompt"`
	MaxOutputTokens int          `json:"maxOutputTokens"`
	Temperature     float64      `json:"temperature"`
}

type geminiPrompt struct {
	Text string `json:"text"`
}

type geminiCandidate struct {
	Content string `json:"content"`
	Output  string `json:"output"`
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Output     struct {
		Text string `json:"text"`
	} `json:"output"`
}

// geminiProvider is the text-generation adapter. The upstream API path
// carries a version segment; on a 404 against the primary version the
// request is retried once against the fallback version before giving up.
// An explicit endpoint override disables the fallback.
type geminiProvider struct {
	baseURL          string
	fallbackURL      string
	endpointOverride string
	apiKey           string
	model            string
	maxTokens        int
	temperature      float64
	httpClient       *http.Client
}

func newGeminiProvider(cfg Config, defaults *catalog.ProviderDefaults) *geminiProvider {
	model := cfg.GeminiModel
	if model == "" {
		model = defaults.DefaultModel
	}
	return &geminiProvider{
		baseURL:          defaults.Endpoint,
		fallbackURL:      defaults.FallbackEndpoint,
		endpointOverride: cfg.GeminiEndpoint,
		apiKey:           cfg.GeminiAPIKey,
		model:            model,
		maxTokens:        defaults.MaxTokens,
		temperature:      defaults.Temperature,
		httpClient:       newHTTPClient(),
	}
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) generate(ctx context.Context, prompt, contextText string) (string, error) {
	reqBody := geminiRequest{
		Prompt: geminiPrompt{
			Text: prompt + "\n\nContext:\n" + contextText + "\n\nPlease respond with a polished business-style section.",
		},
		MaxOutputTokens: p.maxTokens,
		Temperature:     p.temperature,
	}

	var resp geminiResponse
	err := postJSON(ctx, p.httpClient, p.requestURL(p.primaryEndpoint()), nil, reqBody, &resp)

	// One retry against the older API version on "not found", unless the
	// endpoint was explicitly overridden.
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound &&
		p.endpointOverride == "" && p.fallbackURL != "" {
		resp = geminiResponse{}
		err = postJSON(ctx, p.httpClient, p.requestURL(p.versionedEndpoint(p.fallbackURL)), nil, reqBody, &resp)
	}
	if err != nil {
		return "", err
	}

	return extractGeminiText(resp)
}

func (p *geminiProvider) primaryEndpoint() string {
	if p.endpointOverride != "" {
		return p.endpointOverride
	}
	return p.versionedEndpoint(p.baseURL)
}

func (p *geminiProvider) versionedEndpoint(base string) string {
	// Accept both "text-bison@001" and "text-bison-001" model formats.
	modelName := strings.ReplaceAll(p.model, "@", "-")
	return fmt.Sprintf("%s/models/%s:generate", strings.TrimRight(base, "/"), modelName)
}

// requestURL appends the API key as a query parameter.
func (p *geminiProvider) requestURL(endpoint string) string {
	if p.apiKey == "" {
		return endpoint
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "key=" + p.apiKey
}

// extractGeminiText pulls the generated text out of the response,
// preferring candidate content, then output, then a nested message, then
// the top-level output text.
func extractGeminiText(resp geminiResponse) (string, error) {
	if len(resp.Candidates) > 0 {
		cand := resp.Candidates[0]
		switch {
		case cand.Content != "":
			return strings.TrimSpace(cand.Content), nil
		case cand.Output != "":
			return strings.TrimSpace(cand.Output), nil
		case cand.Message.Content != "":
			return strings.TrimSpace(cand.Message.Content), nil
		}
	}
	if resp.Output.Text != "" {
		return strings.TrimSpace(resp.Output.Text), nil
	}
	return "", errors.New("unexpected response shape")
}
