package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Widget           Widget           `mapstructure:",squash"`
	Recaptcha        Recaptcha        `mapstructure:",squash"`
	Gate             Gate             `mapstructure:",squash"`
	Earnings         Earnings         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	CounterReconcile CounterReconcile `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Widget contém a configuração do widget embutido, incluindo a allowlist
// de origens permitidas (verificada por prefixo contra o referer declarado)
type Widget struct {
	AllowedOrigins []string `mapstructure:"widget_allowed_origins"`
}

type Recaptcha struct {
	VerifyURL     string        `mapstructure:"recaptcha_verify_url"`
	SecretKey     string        `mapstructure:"recaptcha_secret_key"`
	VerifyTimeout time.Duration `mapstructure:"recaptcha_verify_timeout"`
}

// Gate contém os limiares das heurísticas anti-bot do pipeline de admissão
type Gate struct {
	// MinTimeSinceLoad é o tempo mínimo entre o carregamento do widget e a
	// primeira interação; abaixo disso a interação é rejeitada como automação
	MinTimeSinceLoad time.Duration `mapstructure:"gate_min_time_since_load"`
	// MinInteractionGap é o intervalo mínimo entre duas interações do mesmo cliente
	MinInteractionGap time.Duration `mapstructure:"gate_min_interaction_gap"`
	// SessionTTL é o tempo de vida das sessões de widget no registro em memória
	SessionTTL time.Duration `mapstructure:"gate_session_ttl"`
}

// Earnings contém as taxas pagas por evento. São constantes de política:
// alterá-las não exige mudança de esquema.
type Earnings struct {
	ViewRate  string `mapstructure:"earnings_view_rate"`
	ClickRate string `mapstructure:"earnings_click_rate"`
}

type Auth struct {
	// AdminSecret é o segredo compartilhado trocado por um token JWT de administração
	AdminSecret string        `mapstructure:"auth_admin_secret"`
	TokenSecret string        `mapstructure:"auth_token_secret"`
	TokenTTL    time.Duration `mapstructure:"auth_token_ttl"`
}

type CounterReconcile struct {
	CronSchedule string `mapstructure:"counter_reconcile_cron"`
	Enabled      bool   `mapstructure:"counter_reconcile_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WIDGET_ALLOWED_ORIGINS", "https://ads.fuzzleprime.com")

	viper.SetDefault("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify")
	viper.SetDefault("RECAPTCHA_SECRET_KEY", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("RECAPTCHA_VERIFY_TIMEOUT", "10s")

	viper.SetDefault("GATE_MIN_TIME_SINCE_LOAD", "100ms") // interação antes disso é tratada como automação
	viper.SetDefault("GATE_MIN_INTERACTION_GAP", "20ms")
	viper.SetDefault("GATE_SESSION_TTL", "30m")

	viper.SetDefault("EARNINGS_VIEW_RATE", "0.005")
	viper.SetDefault("EARNINGS_CLICK_RATE", "0.02")

	viper.SetDefault("AUTH_ADMIN_SECRET", "your_admin_secret") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_SECRET", "your_token_secret") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("COUNTER_RECONCILE_CRON", "0 */2 * * *") // a cada duas horas
	viper.SetDefault("COUNTER_RECONCILE_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Em desenvolvimento o widget também roda fora do domínio de produção
	if config.IsDevelopment() {
		config.Widget.AllowedOrigins = append(
			config.Widget.AllowedOrigins,
			"http://localhost:3000",
			"https://localhost:3000",
		)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// IsDevelopment retorna verdadeiro quando a aplicação roda em ambiente local
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "dev"
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
