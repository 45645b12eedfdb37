package middleware

import (
	"net/http"
	"strings"

	"github.com/fuzzleprime/ad-serving-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RefererAllowlist rejeita requisições cujo referer não comece por uma das
// origens permitidas. É a primeira barreira das rotas do widget: o serviço
// só pode ser consumido a partir do iframe servido pelo domínio configurado.
func RefererAllowlist(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			referer := r.Header.Get("Referer")

			if !RefererAllowed(referer, allowedOrigins) {
				logrus.WithFields(logrus.Fields{
					"referer": referer,
					"path":    r.URL.Path,
				}).Warn("Requisição bloqueada por referer fora da allowlist")
				apiErrors.WriteError(w, apiErrors.ErrUnauthorizedOrigin, "Unauthorized: Invalid referer.", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RefererAllowed verifica o referer por prefixo contra a allowlist
func RefererAllowed(referer string, allowedOrigins []string) bool {
	if referer == "" {
		return false
	}

	for _, origin := range allowedOrigins {
		if strings.HasPrefix(referer, origin) {
			return true
		}
	}

	return false
}
