package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
		model   string
	}{
		{
			name:  "default model",
			cfg:   OpenRouterConfig{APIKey: "sk-or-test", Model: DefaultConfig().OpenRouter.Model},
			model: "google/gemini-2.5-flash",
		},
		{
			// OpenRouter IDs are passed through even when they collide with
			// an OpenAI friendly name.
			name:  "no friendly-name mapping",
			cfg:   OpenRouterConfig{APIKey: "sk-or-test", Model: "gpt-mini"},
			model: "gpt-mini",
		},
		{
			name:  "custom base URL",
			cfg:   OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku", BaseURL: "https://custom.example/v1"},
			model: "anthropic/claude-3-haiku",
		},
		{
			name:  "empty model uses default",
			cfg:   OpenRouterConfig{APIKey: "sk-or-test"},
			model: "google/gemini-2.5-flash",
		},
		{
			name:    "empty API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.5-flash"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.model {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.model)
			}
		})
	}
}

func TestOpenRouterProvider_SendsAttribution(t *testing.T) {
	var referer, title, model string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referer = r.Header.Get("HTTP-Referer")
		title = r.Header.Get("X-Title")
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		model, _ = body["model"].(string)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openAICompletion(`{"mnemonic":"x","examples":[]}`, "stop"))
	}))
	defer server.Close()

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.5-flash",
		BaseURL: server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "あ"}},
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if referer != openRouterReferer || title != openRouterTitle {
		t.Errorf("attribution headers = %q, %q", referer, title)
	}
	if model != "google/gemini-2.5-flash" {
		t.Errorf("model = %q", model)
	}
}
