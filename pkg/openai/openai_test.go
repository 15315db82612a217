package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"voice-notes/pkg/openai"
)

type wireRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       openai.Config
		wantErr   bool
		wantModel string
		wantURL   string
	}{
		{
			name:    "Missing key",
			cfg:     openai.Config{Vendor: openai.ProviderDeepSeek},
			wantErr: true,
		},
		{
			name:    "Unknown vendor",
			cfg:     openai.Config{Vendor: "mistral", APIKey: "k"},
			wantErr: true,
		},
		{
			name:      "DeepSeek preset",
			cfg:       openai.Config{Vendor: openai.ProviderDeepSeek, APIKey: "k"},
			wantModel: "deepseek-chat",
			wantURL:   "https://api.deepseek.com/v1",
		},
		{
			name:      "Qwen preset",
			cfg:       openai.Config{Vendor: openai.ProviderQwen, APIKey: "k"},
			wantModel: "qwen-plus",
			wantURL:   "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		},
		{
			name:      "Explicit model wins",
			cfg:       openai.Config{APIKey: "k", Model: "gpt-4.1"},
			wantModel: "gpt-4.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Model != tt.wantModel {
				t.Errorf("Model = %q, want %q", cfg.Model, tt.wantModel)
			}
			if cfg.BaseURL != tt.wantURL {
				t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, tt.wantURL)
			}
		})
	}
}

func TestGenerateContent(t *testing.T) {
	var calls atomic.Int32
	var captured wireRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		last := captured.Messages[len(captured.Messages)-1].Content
		w.Header().Set("Content-Type", "application/json")
		if last == "cause_503" {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
			return
		}

		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "deepseek-chat",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "{\"hasReminder\": false}"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 5, "total_tokens": 25}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{
		Vendor:  openai.ProviderDeepSeek,
		APIKey:  "test-key",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		calls.Store(0)
		resp, err := client.GenerateContent(context.Background(), &openai.Request{
			System:      "system prompt",
			Messages:    []openai.Message{{Role: "user", Content: "hola"}},
			Temperature: 0.1,
			JSONMode:    true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if captured.Model != "deepseek-chat" {
			t.Errorf("model = %q", captured.Model)
		}
		if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Content != "hola" {
			t.Errorf("unexpected messages %+v", captured.Messages)
		}
		if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
			t.Errorf("JSON mode not requested")
		}
		if resp.Text != `{"hasReminder": false}` {
			t.Errorf("Text = %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 25 {
			t.Errorf("TotalTokens = %d", resp.Usage.TotalTokens)
		}
		if calls.Load() != 1 {
			t.Errorf("expected exactly one HTTP call, got %d", calls.Load())
		}
	})

	t.Run("Non-2xx is not retried", func(t *testing.T) {
		calls.Store(0)
		_, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "cause_503"}},
		})
		if err == nil {
			t.Fatalf("expected error from 503 response")
		}
		var statusErr *openai.StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("expected StatusError 503, got %v", err)
		}
		if calls.Load() != 1 {
			t.Errorf("expected exactly one HTTP call, got %d", calls.Load())
		}
	})
}
