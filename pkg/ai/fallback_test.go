package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	result string
	err    error
	calls  int
}

func (s *stubProvider) SummarizeTranscript(ctx context.Context, transcript, instruction string) (string, error) {
	s.calls++
	return s.result, s.err
}

func newOllamaStub(t *testing.T, response string) (*httptest.Server, *OllamaService) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"response": response, "done": true})
	}))
	t.Cleanup(srv.Close)
	return srv, NewOllamaService(srv.URL, "llama3")
}

func TestFallbackPrefersPrimary(t *testing.T) {
	primary := &stubProvider{result: "from groq"}
	_, ollama := newOllamaStub(t, "from ollama")

	svc := NewFallbackService(primary, ollama)
	got, err := svc.SummarizeTranscript(context.Background(), "transcript", "instruction")
	require.NoError(t, err)
	assert.Equal(t, "from groq", got)
	assert.Equal(t, 1, primary.calls)
}

func TestFallbackRoutesToOllamaOnQuotaError(t *testing.T) {
	primary := &stubProvider{err: errors.New("groq API error (429): rate limit exceeded")}
	_, ollama := newOllamaStub(t, "from ollama")

	svc := NewFallbackService(primary, ollama)
	got, err := svc.SummarizeTranscript(context.Background(), "transcript", "instruction")
	require.NoError(t, err)
	assert.Equal(t, "from ollama", got)
}

func TestFallbackFailsWhenAllProvidersFail(t *testing.T) {
	primary := &stubProvider{err: errors.New("connection refused")}

	svc := NewFallbackService(primary, nil)
	_, err := svc.SummarizeTranscript(context.Background(), "transcript", "instruction")
	assert.Error(t, err)
}

func TestIsQuotaError(t *testing.T) {
	assert.True(t, isQuotaError(errors.New("status 429")))
	assert.True(t, isQuotaError(errors.New("rate limit exceeded")))
	assert.False(t, isQuotaError(errors.New("bad request")))
	assert.False(t, isQuotaError(nil))
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, isConnectionError(errors.New("dial tcp 127.0.0.1:11434: connection refused")))
	assert.False(t, isConnectionError(errors.New("invalid model")))
	assert.False(t, isConnectionError(nil))
}
