package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestOpenRouterGenerate(t *testing.T) {
	p := &openRouterProvider{
		endpoint:    "http://router/api/v1/chat/completions",
		apiKey:      "or-test",
		model:       "google/gemini-2.5-flash-lite",
		maxTokens:   600,
		temperature: 0.2,
		httpClient: &http.Client{
			Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				if got := req.Header.Get("Authorization"); got != "Bearer or-test" {
					t.Fatalf("Authorization = %q", got)
				}

				var in chatCompletionRequest
				if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
					t.Fatalf("decode req: %v", err)
				}
				if in.Model != "google/gemini-2.5-flash-lite" {
					t.Fatalf("model = %q", in.Model)
				}

				return jsonResponse(http.StatusOK, map[string]any{
					"choices": []map[string]any{
						{"message": map[string]any{"content": "Routed section."}},
					},
				}), nil
			}),
		},
	}

	text, err := p.generate(context.Background(), "Write an intro", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "Routed section." {
		t.Errorf("text = %q", text)
	}
}

func TestOpenRouterUpstreamError(t *testing.T) {
	p := &openRouterProvider{
		endpoint: "http://router/api/v1/chat/completions",
		apiKey:   "or-test",
		model:    "google/gemini-2.5-flash-lite",
		httpClient: &http.Client{
			Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadGateway, map[string]any{"error": "upstream down"}), nil
			}),
		},
	}

	_, err := p.generate(context.Background(), "Write an intro", "")
	if err == nil {
		t.Fatal("expected error")
	}
}
