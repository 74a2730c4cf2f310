package llm_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderchat/internal/adapters/out/llm"
	"orderchat/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresBaseURLAndModel(t *testing.T) {
	_, err := llm.NewClient(llm.Config{Model: "gpt-4o-mini"})
	assert.Error(t, err)

	_, err = llm.NewClient(llm.Config{BaseURL: "http://localhost:1234/v1"})
	assert.Error(t, err)
}

func TestComplete_SendsChatCompletionRequest(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-1",
			"model": "gpt-4o-mini",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]any{"role": "assistant", "content": "Hello!"}},
			},
		})
	}))
	defer server.Close()

	client, err := llm.NewClient(llm.Config{BaseURL: server.URL + "/v1", APIKey: "sk-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)

	reply, err := client.Complete(t.Context(), []ports.ChatMessage{
		{Role: "system", Content: "You are helpful."},
		{Role: "user", Content: "Hi"},
	}, 0.7)
	require.NoError(t, err)

	assert.Equal(t, "Hello!", reply)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	assert.InDelta(t, 0.7, gotBody["temperature"], 0.001)

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	first, ok := messages[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "system", first["role"])
}

func TestComplete_OmitsAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	client, err := llm.NewClient(llm.Config{BaseURL: server.URL, Model: "local"})
	require.NoError(t, err)

	_, err = client.Complete(t.Context(), []ports.ChatMessage{{Role: "user", Content: "Hi"}}, 0.1)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestComplete_NonOKStatus_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := llm.NewClient(llm.Config{BaseURL: server.URL, Model: "local"})
	require.NoError(t, err)

	_, err = client.Complete(t.Context(), []ports.ChatMessage{{Role: "user", Content: "Hi"}}, 0.7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestComplete_EmptyChoices_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client, err := llm.NewClient(llm.Config{BaseURL: server.URL, Model: "local"})
	require.NoError(t, err)

	_, err = client.Complete(t.Context(), []ports.ChatMessage{{Role: "user", Content: "Hi"}}, 0.7)
	require.Error(t, err)
}

func TestComplete_FunctionRoleCarriesName(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	client, err := llm.NewClient(llm.Config{BaseURL: server.URL, Model: "local"})
	require.NoError(t, err)

	_, err = client.Complete(t.Context(), []ports.ChatMessage{
		{Role: "function", Content: `{"status": "created"}`, Name: "track_order"},
	}, 0.1)
	require.NoError(t, err)

	messages := gotBody["messages"].([]any)
	first := messages[0].(map[string]any)
	assert.Equal(t, "track_order", first["name"])
}
