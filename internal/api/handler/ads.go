package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/serving"
	"github.com/fuzzleprime/ad-serving-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListAds retorna os anúncios elegíveis para o widget, já na ordem de exibição
func ListAds(service serving.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.AdFilter{
			WalletAddress:    query.Get("walletAddress"),
			Profile:          query.Get("profile") == "true",
			IncludeZeroBoost: query.Get("includeZeroBoost") == "true",
		}

		ads, err := service.ListAds(r.Context(), filter)
		if err != nil {
			logrus.Error("Erro ao listar anúncios:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar anúncios", nil)
			return
		}

		// Lista vazia é resposta normal: o widget exibe "sem anúncios"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"ads": ads,
		})
	}
}

// CreateAd cria um novo anúncio (não publicado até passar pela moderação)
func CreateAd(service serving.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAdRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Title == "" || req.URL == "" || req.UserWallet == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos title, url e user_wallet são obrigatórios", nil)
			return
		}

		ad, err := service.CreateAd(r.Context(), &req)
		if err != nil {
			logrus.Error("Erro ao criar anúncio:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Ad created successfully",
			"ad":      ad,
		})
	}
}

// GetAdByID retorna um anúncio pelo identificador
func GetAdByID(service serving.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		ad, err := service.GetAd(r.Context(), id)
		if err != nil {
			logrus.Error("Erro ao buscar anúncio:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar anúncio", nil)
			return
		}

		if ad == nil {
			apiErrors.WriteError(w, apiErrors.ErrAdNotFound, "Anúncio não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"ad": ad,
		})
	}
}

// ModerateAd publica ou despublica um anúncio (rota administrativa)
func ModerateAd(service serving.AdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.ModerateAdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.ModerateAd(r.Context(), id, req.Published); err != nil {
			if errors.Is(err, repository.ErrAdNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrAdNotFound, "Anúncio não encontrado", nil)
				return
			}
			logrus.Error("Erro ao moderar anúncio:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao moderar anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":   "Ad updated successfully",
			"published": req.Published,
		})
	}
}
