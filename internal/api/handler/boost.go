package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fuzzleprime/ad-serving-api/internal/usecases/boosting"
	"github.com/fuzzleprime/ad-serving-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// BoostRequest é o corpo da requisição de boost
type BoostRequest struct {
	WalletAddress string          `json:"wallet_address"`
	BoostAmount   decimal.Decimal `json:"boost_amount"`
}

// ApplyBoost aplica um boost a um anúncio e retorna o novo nível. O chamador
// pode enviar um header Idempotency-Key para tornar retries seguros.
func ApplyBoost(service boosting.Booster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req BoostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.WalletAddress == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo wallet_address é obrigatório", nil)
			return
		}

		dedupKey := r.Header.Get("Idempotency-Key")

		newLevel, err := service.ApplyBoost(r.Context(), adID, req.WalletAddress, req.BoostAmount, dedupKey)
		if err != nil {
			handleBoostError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":     "Boost recorded",
			"boost_level": newLevel,
		})
	}
}

func handleBoostError(w http.ResponseWriter, err error) {
	var boostErr *boosting.BoostError
	if errors.As(err, &boostErr) {
		apiErrors.WriteError(w, boostErr.Code, boostErr.Error(), nil)
		return
	}

	logrus.Error("Erro inesperado ao aplicar boost:", err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao aplicar boost", nil)
}
