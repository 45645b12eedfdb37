package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefererAllowed(t *testing.T) {
	allowed := []string{"https://ads.fuzzleprime.com", "http://localhost:3000"}

	tests := []struct {
		name    string
		referer string
		want    bool
	}{
		{
			name:    "Origem exata",
			referer: "https://ads.fuzzleprime.com",
			want:    true,
		},
		{
			name:    "Caminho dentro da origem permitida",
			referer: "https://ads.fuzzleprime.com/widget?ad=abc",
			want:    true,
		},
		{
			name:    "Segunda origem da allowlist",
			referer: "http://localhost:3000/preview",
			want:    true,
		},
		{
			name:    "Referer vazio",
			referer: "",
			want:    false,
		},
		{
			name:    "Origem desconhecida",
			referer: "https://evil.example.com",
			want:    false,
		},
		{
			name:    "Origem permitida como sufixo não conta",
			referer: "https://evil.example.com/https://ads.fuzzleprime.com",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RefererAllowed(tt.referer, allowed))
		})
	}
}

func TestRefererAllowlist(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RefererAllowlist([]string{"https://ads.fuzzleprime.com"})(next)

	t.Run("Referer permitido passa adiante", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
		req.Header.Set("Referer", "https://ads.fuzzleprime.com/widget")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Referer fora da allowlist é bloqueado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
		req.Header.Set("Referer", "https://evil.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Sem referer é bloqueado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
