package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/database/postgres"
	"github.com/fuzzleprime/ad-serving-api/infrastructure/integrator/recaptcha"
	"github.com/fuzzleprime/ad-serving-api/infrastructure/integrator/recaptcha/recaptchaclient"
	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository"
	"github.com/fuzzleprime/ad-serving-api/internal/api"
	"github.com/fuzzleprime/ad-serving-api/internal/config"
	"github.com/fuzzleprime/ad-serving-api/internal/scheduler"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/authenticating"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/boosting"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/earning"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/gatekeeping"
	"github.com/fuzzleprime/ad-serving-api/internal/usecases/serving"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	adRepo := repository.NewAdRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	recaptchaClient := recaptchaclient.NewClient(cfg)
	recaptchaVerifier := recaptcha.New(cfg, recaptchaClient)

	adService := serving.NewService(adRepo)
	gateService := gatekeeping.NewService(cfg, recaptchaVerifier, adRepo, activityRepo)
	boostService := boosting.NewService(pgConn, adRepo, activityRepo)

	earningService, err := earning.NewService(cfg, activityRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de ganhos")
	}

	// Inicializa o agendador de reconciliação de contadores
	counterReconcileService := scheduler.NewCounterReconcileService(adRepo, activityRepo, cfg)

	if err := counterReconcileService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de contadores")
	} else {
		logrus.Info("Agendador de reconciliação de contadores iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		adService,
		gateService,
		boostService,
		earningService,
		authenticator,
		counterReconcileService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
