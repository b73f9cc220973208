package describe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

func newTestClient(endpoint, apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: endpoint,
		model:    defaultModel,
		client:   &http.Client{},
		logger:   logger.NewLogger(),
	}
}

func TestProductDescription(t *testing.T) {
	var gotVersion, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("anthropic-version")
		gotKey = r.Header.Get("X-API-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"زيت زيتون بكر ممتاز من أجود الأصناف."}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, "sk-test")
	got := c.ProductDescription(context.Background(), "زيت زيتون", "ar")

	assert.Equal(t, "زيت زيتون بكر ممتاز من أجود الأصناف.", got)
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, "sk-test", gotKey)
}

func TestProductDescriptionFallbacks(t *testing.T) {
	errServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer errServer.Close()

	emptyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer emptyServer.Close()

	tests := []struct {
		name string
		c    *Client
		lang string
	}{
		{"sem chave de API", newTestClient(errServer.URL, ""), "ar"},
		{"erro do servidor", newTestClient(errServer.URL, "sk-test"), "fr"},
		{"resposta vazia", newTestClient(emptyServer.URL, "sk-test"), "ar"},
		{"servidor inacessível", newTestClient("http://127.0.0.1:1", "sk-test"), "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.ProductDescription(context.Background(), "حليب", tt.lang)
			assert.Equal(t, i18n.T(tt.lang, "describe_failed"), got)
		})
	}
}

func TestProductDescriptionContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[{"type":"text","text":"jamais atteint"}]}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(server.URL, "sk-test")
	got := c.ProductDescription(ctx, "fromage", "fr")
	assert.Equal(t, i18n.T("fr", "describe_failed"), got)
}
