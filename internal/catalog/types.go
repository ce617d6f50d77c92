package catalog

// ProviderDefaults holds the wire-level defaults for one text-generation
// provider: where to send requests and which generation parameters to use
// when the environment does not override them.
type ProviderDefaults struct {
	// Endpoint is the base endpoint requests are sent to.
	Endpoint string `yaml:"endpoint" json:"endpoint"`

	// FallbackEndpoint, when set, is tried once after a "not found"
	// response against the primary endpoint (API version fallback).
	FallbackEndpoint string `yaml:"fallback_endpoint,omitempty" json:"fallback_endpoint,omitempty"`

	// DefaultModel is used when no model is configured.
	DefaultModel string `yaml:"default_model" json:"default_model"`

	// MaxTokens bounds the completion length.
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	// Temperature is the sampling temperature for document prose.
	Temperature float64 `yaml:"temperature" json:"temperature"`
}
