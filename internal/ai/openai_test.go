package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIComplete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/chat/completions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected auth header %q", got)
			}

			var req chatCompletionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if req.Model != "gpt-3.5-turbo" {
				t.Errorf("unexpected model %s", req.Model)
			}
			if len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
				t.Errorf("unexpected messages %+v", req.Messages)
			}

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": "YES"}},
				},
			})
		}))
		defer server.Close()

		client := NewOpenAIClient(server.Client(), server.URL, "test-key", "gpt-3.5-turbo")

		out, err := client.Complete(context.Background(), "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "YES" {
			t.Errorf("expected YES, got %q", out)
		}
	})

	t.Run("provider_error_status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(server.Client(), server.URL, "bad-key", "gpt-3.5-turbo")

		_, err := client.Complete(context.Background(), "hello")
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("no_choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(server.Client(), server.URL, "test-key", "gpt-3.5-turbo")

		_, err := client.Complete(context.Background(), "hello")
		if err == nil {
			t.Fatal("expected error on empty choices")
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		client := NewOpenAIClient(http.DefaultClient, "http://127.0.0.1:1", "test-key", "gpt-3.5-turbo")

		_, err := client.Complete(context.Background(), "hello")
		if err == nil {
			t.Fatal("expected error on unreachable provider")
		}
	})
}
