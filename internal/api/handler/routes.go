package handler

import (
	"net/http"

	"github.com/fuzzleprime/ad-serving-api/internal/api/handler/router"
	"github.com/fuzzleprime/ad-serving-api/internal/config"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/authenticating"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/boosting"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/earning"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/gatekeeping"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/serving"
	"github.com/fuzzleprime/ad-serving-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Widget agrupa as rotas consumidas pelo widget embutido. Todas exigem
// referer dentro da allowlist de origens; as rotas de atribuição revalidam
// a origem dentro do gate, o middleware só corta cedo.
func Widget(
	cfg *config.Config,
	adService serving.AdService,
	gate gatekeeping.Gate,
	boostService boosting.Booster,
	aggregator earning.Aggregator,
) router.Group {
	return router.Group{
		Middlewares: []func(http.Handler) http.Handler{
			middleware.RefererAllowlist(cfg.Widget.AllowedOrigins),
		},
		Routes: []router.Route{
			{
				Path:    "/v1/ads",
				Method:  http.MethodGet,
				Handler: ListAds(adService),
			},
			{
				Path:    "/v1/ads",
				Method:  http.MethodPost,
				Handler: CreateAd(adService),
			},
			{
				Path:    "/v1/ads/:id",
				Method:  http.MethodGet,
				Handler: GetAdByID(adService),
			},
			{
				Path:    "/v1/ads/:id/view",
				Method:  http.MethodPost,
				Handler: RecordView(gate),
			},
			{
				Path:    "/v1/ads/:id/click",
				Method:  http.MethodPost,
				Handler: RecordClick(gate),
			},
			{
				Path:    "/v1/ads/:id/boost",
				Method:  http.MethodPost,
				Handler: ApplyBoost(boostService),
			},
			{
				Path:    "/v1/ads/:id/activity",
				Method:  http.MethodGet,
				Handler: GetAdActivity(aggregator),
			},
			{
				Path:    "/v1/activity",
				Method:  http.MethodGet,
				Handler: ListActivity(aggregator),
			},
			{
				Path:    "/v1/earnings",
				Method:  http.MethodGet,
				Handler: GetEarnings(aggregator),
			},
		},
	}
}

// Admin agrupa as rotas administrativas: moderação, resgate de eventos e
// controle de crons. Exceto o login, todas exigem o token JWT de administração.
func Admin(
	authService authenticating.Authenticator,
	adService serving.AdService,
	aggregator earning.Aggregator,
	cronServices CronJobServices,
) router.Group {
	return router.Group{
		Middlewares: []func(http.Handler) http.Handler{
			middleware.AdminOnly(authService),
		},
		Routes: []router.Route{
			{
				Path:    "/v1/ads/:id",
				Method:  http.MethodPatch,
				Handler: ModerateAd(adService),
			},
			{
				Path:    "/v1/activity/claim",
				Method:  http.MethodPost,
				Handler: ClaimActivity(aggregator),
			},
			{
				Path:    "/v1/cron/:type/run",
				Method:  http.MethodPost,
				Handler: RunCronJob(cronServices),
			},
			{
				Path:    "/v1/cron/status",
				Method:  http.MethodGet,
				Handler: GetCronStatus(cronServices),
			},
		},
	}
}

// Authentication retorna a rota de login administrativo
func Authentication(authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/login",
			Method:  http.MethodPost,
			Handler: AdminLogin(authService),
		},
	}
}
