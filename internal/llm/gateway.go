// Package llm is the provider-agnostic text-generation boundary. It routes
// generation requests to one of several interchangeable providers and
// degrades gracefully: a provider failure becomes placeholder text in the
// result, never an error crossing the gateway boundary.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"draftdeck/internal/catalog"
)

// Result is the typed outcome of one generation call. Text is always
// non-empty for non-empty input: on provider failure it holds a
// human-readable placeholder beginning with a bracketed error marker, and
// Degraded is set so callers can distinguish real content from the
// placeholder without string-sniffing.
type Result struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
	Degraded bool   `json:"degraded"`
	Reason   string `json:"reason,omitempty"`
}

// Gateway generates text for a prompt with optional supporting context.
type Gateway interface {
	Generate(ctx context.Context, prompt, contextText string) Result
}

// Config selects the provider and carries its credentials. It is an
// explicit value passed to New, not ambient process state, so gateways with
// different configurations can coexist.
type Config struct {
	// Provider is the selector: "openai", "gemini", "openrouter" or
	// "mock". Anything else, or a selected provider without its
	// credential, falls back to the mock generator.
	Provider string

	OpenAIAPIKey string
	OpenAIModel  string

	GeminiAPIKey string
	GeminiModel  string
	// GeminiEndpoint overrides the catalog endpoint. Setting it disables
	// the API-version fallback.
	GeminiEndpoint string

	OpenRouterAPIKey   string
	OpenRouterModel    string
	OpenRouterEndpoint string
}

// provider is one concrete backend. generate returns the raw upstream text
// or an error; the gateway owns the error-to-placeholder conversion.
type provider interface {
	Name() string
	generate(ctx context.Context, prompt, contextText string) (string, error)
}

type gateway struct {
	provider provider
	logger   *slog.Logger
}

// New builds a gateway from the given configuration. Routing is fixed
// priority: a specifically selected alternate provider with its credential
// wins, then the baseline provider, then the deterministic mock.
func New(cfg Config, registry *catalog.Registry, logger *slog.Logger) (Gateway, error) {
	p, err := selectProvider(cfg, registry)
	if err != nil {
		return nil, err
	}

	logger.Info("llm gateway configured", "provider", p.Name())

	return &gateway{provider: p, logger: logger}, nil
}

func selectProvider(cfg Config, registry *catalog.Registry) (provider, error) {
	switch {
	case cfg.Provider == "gemini" && cfg.GeminiAPIKey != "":
		defaults, err := registry.Get("gemini")
		if err != nil {
			return nil, err
		}
		return newGeminiProvider(cfg, defaults), nil

	case cfg.Provider == "openrouter" && cfg.OpenRouterAPIKey != "":
		defaults, err := registry.Get("openrouter")
		if err != nil {
			return nil, err
		}
		return newOpenRouterProvider(cfg, defaults), nil

	case cfg.Provider == "openai" && cfg.OpenAIAPIKey != "":
		defaults, err := registry.Get("openai")
		if err != nil {
			return nil, err
		}
		return newOpenAIProvider(cfg, defaults), nil

	default:
		return newMockProvider(), nil
	}
}

// Generate never returns an error. Provider failures are converted to an
// inline placeholder so an orchestration step generating many sections is
// never aborted by one failed call.
func (g *gateway) Generate(ctx context.Context, prompt, contextText string) Result {
	text, err := g.provider.generate(ctx, prompt, contextText)
	if err != nil {
		g.logger.Warn("generation degraded",
			"provider", g.provider.Name(),
			"error", err,
		)
		return Result{
			Text:     fmt.Sprintf("[%s error: %v]", g.provider.Name(), err),
			Provider: g.provider.Name(),
			Degraded: true,
			Reason:   err.Error(),
		}
	}

	return Result{
		Text:     text,
		Provider: g.provider.Name(),
	}
}
