package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fuzzleprime/ad-serving-api/internal/domain"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/earning"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/gatekeeping"
	"github.com/fuzzleprime/ad-serving-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AttributionBody é o corpo das requisições de view e click do widget
type AttributionBody struct {
	WalletAddress   string `json:"wallet_address"`
	SessionID       string `json:"session_id"`
	RecaptchaToken  string `json:"recaptcha_token"`
	TimeSinceLoadMs int64  `json:"time_since_load_ms"`
}

// RecordView registra uma visualização de anúncio, se admitida pelo gate
func RecordView(gate gatekeeping.Gate) http.HandlerFunc {
	return recordActivity(gate, domain.ActionView, "View recorded")
}

// RecordClick registra um clique em anúncio, se admitido pelo gate.
// Cliques repetidos da mesma sessão respondem sucesso sem nova gravação.
func RecordClick(gate gatekeeping.Gate) http.HandlerFunc {
	return recordActivity(gate, domain.ActionClick, "Click recorded")
}

func recordActivity(gate gatekeeping.Gate, action domain.ActionType, successMessage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body AttributionBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if body.WalletAddress == "" || body.SessionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos wallet_address e session_id são obrigatórios", nil)
			return
		}

		req := domain.AttributionRequest{
			AdID:            adID,
			WalletAddress:   body.WalletAddress,
			SessionID:       body.SessionID,
			Origin:          r.Header.Get("Referer"),
			RecaptchaToken:  body.RecaptchaToken,
			TimeSinceLoadMs: body.TimeSinceLoadMs,
		}

		var err error
		if action == domain.ActionClick {
			_, err = gate.RecordClick(r.Context(), req)
		} else {
			_, err = gate.RecordView(r.Context(), req)
		}
		if err != nil {
			handleGateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": successMessage,
		})
	}
}

// GetEarnings retorna o total e os ganhos por anúncio de uma carteira
func GetEarnings(service earning.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := r.URL.Query().Get("walletAddress")
		if walletAddress == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Wallet address is required", nil)
			return
		}

		summary, err := service.EarningsSummary(r.Context(), walletAddress)
		if err != nil {
			logrus.Error("Erro ao calcular ganhos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular ganhos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GetAdActivity retorna a série temporal de atividade de um anúncio,
// opcionalmente restrita a uma carteira
func GetAdActivity(service earning.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		walletAddress := r.URL.Query().Get("walletAddress")

		series, err := service.ActivityTimeSeries(r.Context(), adID, walletAddress)
		if err != nil {
			logrus.Error("Erro ao montar série de atividade:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar série de atividade", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": series,
		})
	}
}

// ListActivity retorna os eventos não resgatados (exceto boosts) de uma carteira
func ListActivity(service earning.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := r.URL.Query().Get("walletAddress")
		if walletAddress == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Wallet address is required", nil)
			return
		}

		events, err := service.ListUnclaimed(r.Context(), walletAddress)
		if err != nil {
			logrus.Error("Erro ao listar atividade:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar atividade", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"activity": events,
		})
	}
}

// handleGateError converte rejeições do pipeline em respostas tipadas
func handleGateError(w http.ResponseWriter, err error) {
	var gateErr *gatekeeping.GateError
	if errors.As(err, &gateErr) {
		apiErrors.WriteError(w, gateErr.Code, gateErr.Error(), nil)
		return
	}

	logrus.Error("Erro inesperado ao registrar evento:", err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar evento", nil)
}
