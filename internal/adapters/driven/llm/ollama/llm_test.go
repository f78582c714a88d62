package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jobscope-cli/internal/core/ports/driven"
)

func TestNewLLMService_Defaults(t *testing.T) {
	svc := NewLLMService(Config{})
	defer svc.Close()

	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.Equal(t, DefaultBaseURL, svc.baseURL)
}

func TestLLMService_Generate(t *testing.T) {
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(generateResponse{Response: `{"properties":{}}`, Done: true}) //nolint:errcheck
	}))
	defer srv.Close()

	svc := NewLLMService(Config{BaseURL: srv.URL, Model: "llama3.2"})
	defer svc.Close()

	out, err := svc.Generate(context.Background(), "extract this", driven.GenerateOptions{JSONMode: true})

	require.NoError(t, err)
	assert.Equal(t, `{"properties":{}}`, out)
	assert.Equal(t, "llama3.2", gotReq.Model)
	assert.Equal(t, "extract this", gotReq.Prompt)
	assert.Equal(t, "json", gotReq.Format)
	assert.False(t, gotReq.Stream)
}

func TestLLMService_Generate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewLLMService(Config{BaseURL: srv.URL})
	defer svc.Close()

	_, err := svc.Generate(context.Background(), "extract this", driven.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestLLMService_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewLLMService(Config{BaseURL: srv.URL})
	defer svc.Close()

	assert.NoError(t, svc.Ping(context.Background()))
}

func TestLLMService_Ping_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewLLMService(Config{BaseURL: srv.URL})
	defer svc.Close()

	assert.Error(t, svc.Ping(context.Background()))
}
