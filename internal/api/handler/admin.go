package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fuzzleprime/ad-serving-api/internal/usecases/authenticating"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/earning"
	"github.com/fuzzleprime/ad-serving-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type AdminLoginRequest struct {
	Secret string `json:"secret"`
}

type ClaimRequest struct {
	EventIDs []int64 `json:"event_ids"`
}

// AdminLogin troca o segredo de administração por um token JWT
func AdminLogin(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginAdmin(req.Secret)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// ClaimActivity marca eventos como resgatados após o pagamento externo.
// A operação é idempotente: resgatar eventos já resgatados não é erro.
func ClaimActivity(service earning.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.EventIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo event_ids é obrigatório", nil)
			return
		}

		claimed, err := service.Claim(r.Context(), req.EventIDs)
		if err != nil {
			logrus.Error("Erro ao resgatar eventos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao resgatar eventos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Events claimed",
			"claimed": claimed,
		})
	}
}
