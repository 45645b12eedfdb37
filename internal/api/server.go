package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/fuzzleprime/ad-serving-api/internal/api/handler"
	"github.com/fuzzleprime/ad-serving-api/internal/api/handler/router"
	"github.com/fuzzleprime/ad-serving-api/internal/config"
	"github.com/fuzzleprime/ad-serving-api/internal/scheduler"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/authenticating"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/boosting"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/earning"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/gatekeeping"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/serving"
	"github.com/fuzzleprime/ad-serving-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	adService serving.AdService,
	gateService gatekeeping.Gate,
	boostService boosting.Booster,
	earningService earning.Aggregator,
	authenticator authenticating.Authenticator,
	counterReconcileService *scheduler.CounterReconcileService,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{
		CounterReconcileService: counterReconcileService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithGroup(handler.Widget(cfg, adService, gateService, boostService, earningService)),
		router.WithGroup(handler.Admin(authenticator, adService, earningService, cronServices)),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Widget.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
