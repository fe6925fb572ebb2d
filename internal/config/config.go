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
	"github.com/vfg2006/vendorhub-api/internal/domain"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	SalesStore     SalesStore     `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	Policy         Policy         `mapstructure:",squash"`
	UpstreamHealth UpstreamHealth `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	RateLimit      RateLimit      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type SalesStore struct {
	URL            string `mapstructure:"sales_store_url"`
	TimeoutSeconds int    `mapstructure:"sales_store_timeout_seconds"`
}

func (s SalesStore) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

type Auth struct {
	JWTSecret string `mapstructure:"auth_jwt_secret"`
}

type Cache struct {
	RedisAddr         string `mapstructure:"redis_addr"`
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db"`
	SummaryTTLSeconds int    `mapstructure:"summary_cache_ttl_seconds"`
}

func (c Cache) Enabled() bool {
	return c.RedisAddr != ""
}

func (c Cache) SummaryTTL() time.Duration {
	return time.Duration(c.SummaryTTLSeconds) * time.Second
}

type Policy struct {
	LoanFloor          float64 `mapstructure:"loan_floor"`
	LoanCapRatio       float64 `mapstructure:"loan_cap_ratio"`
	SuggestedLoanRatio float64 `mapstructure:"suggested_loan_ratio"`
	CreditScoreDivisor float64 `mapstructure:"credit_score_divisor"`
	CreditScoreMin     int     `mapstructure:"credit_score_min"`
	CreditScoreMax     int     `mapstructure:"credit_score_max"`
	InterestRate       float64 `mapstructure:"loan_interest_rate"`
	TenureMonths       int     `mapstructure:"loan_tenure_months"`
	WindowDays         int     `mapstructure:"daily_series_window"`
}

type UpstreamHealth struct {
	IntervalSeconds int  `mapstructure:"upstream_health_interval_seconds"`
	Enabled         bool `mapstructure:"upstream_health_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type RateLimit struct {
	SalesWritesPerMinute    int `mapstructure:"sales_writes_per_minute"`
	PublicRequestsPerMinute int `mapstructure:"public_requests_per_minute"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vendorhub?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("SALES_STORE_URL", "http://localhost:8001")
	viper.SetDefault("SALES_STORE_TIMEOUT_SECONDS", 15)

	viper.SetDefault("AUTH_JWT_SECRET", "your_secret_key") // ONLY LOCAL

	// Redis vazio desabilita o cache de resumos
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SUMMARY_CACHE_TTL_SECONDS", 60)

	policy := domain.DefaultMetricsPolicy()
	viper.SetDefault("LOAN_FLOOR", policy.LoanFloor)
	viper.SetDefault("LOAN_CAP_RATIO", policy.LoanCapRatio)
	viper.SetDefault("SUGGESTED_LOAN_RATIO", policy.SuggestedLoanRatio)
	viper.SetDefault("CREDIT_SCORE_DIVISOR", policy.CreditScoreDivisor)
	viper.SetDefault("CREDIT_SCORE_MIN", policy.CreditScoreMin)
	viper.SetDefault("CREDIT_SCORE_MAX", policy.CreditScoreMax)
	viper.SetDefault("LOAN_INTEREST_RATE", policy.AnnualInterestRate)
	viper.SetDefault("LOAN_TENURE_MONTHS", policy.TenureMonths)
	viper.SetDefault("DAILY_SERIES_WINDOW", policy.WindowDays)

	viper.SetDefault("UPSTREAM_HEALTH_INTERVAL_SECONDS", 30) // Mesmo intervalo do polling do app
	viper.SetDefault("UPSTREAM_HEALTH_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("SALES_WRITES_PER_MINUTE", 30)
	viper.SetDefault("PUBLIC_REQUESTS_PER_MINUTE", 60)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.SalesStore.TimeoutSeconds <= 0 {
		logrus.Warnf("SALES_STORE_TIMEOUT_SECONDS inválido (%d), usando 15s", config.SalesStore.TimeoutSeconds)
		config.SalesStore.TimeoutSeconds = 15
	}

	if config.UpstreamHealth.IntervalSeconds <= 0 {
		logrus.Warnf("UPSTREAM_HEALTH_INTERVAL_SECONDS inválido (%d), usando 30s", config.UpstreamHealth.IntervalSeconds)
		config.UpstreamHealth.IntervalSeconds = 30
	}

	return config, nil
}

// MetricsPolicy converte a configuração em política, trocando valores inválidos pelos padrões
func (p Policy) MetricsPolicy() domain.MetricsPolicy {
	defaults := domain.DefaultMetricsPolicy()
	policy := domain.MetricsPolicy{
		LoanFloor:          p.LoanFloor,
		LoanCapRatio:       p.LoanCapRatio,
		SuggestedLoanRatio: p.SuggestedLoanRatio,
		CreditScoreDivisor: p.CreditScoreDivisor,
		CreditScoreMin:     p.CreditScoreMin,
		CreditScoreMax:     p.CreditScoreMax,
		AnnualInterestRate: p.InterestRate,
		TenureMonths:       p.TenureMonths,
		WindowDays:         p.WindowDays,
	}

	if policy.LoanFloor <= 0 {
		warnPolicy("LOAN_FLOOR", policy.LoanFloor, defaults.LoanFloor)
		policy.LoanFloor = defaults.LoanFloor
	}
	if policy.LoanCapRatio <= 0 {
		warnPolicy("LOAN_CAP_RATIO", policy.LoanCapRatio, defaults.LoanCapRatio)
		policy.LoanCapRatio = defaults.LoanCapRatio
	}
	if policy.SuggestedLoanRatio <= 0 {
		warnPolicy("SUGGESTED_LOAN_RATIO", policy.SuggestedLoanRatio, defaults.SuggestedLoanRatio)
		policy.SuggestedLoanRatio = defaults.SuggestedLoanRatio
	}
	if policy.CreditScoreDivisor <= 0 {
		warnPolicy("CREDIT_SCORE_DIVISOR", policy.CreditScoreDivisor, defaults.CreditScoreDivisor)
		policy.CreditScoreDivisor = defaults.CreditScoreDivisor
	}
	if policy.CreditScoreMin > policy.CreditScoreMax {
		logrus.WithFields(logrus.Fields{
			"credit_score_min": policy.CreditScoreMin,
			"credit_score_max": policy.CreditScoreMax,
		}).Warn("Limites do credit score invertidos, usando valores padrão")
		policy.CreditScoreMin = defaults.CreditScoreMin
		policy.CreditScoreMax = defaults.CreditScoreMax
	}
	if policy.AnnualInterestRate < 0 {
		warnPolicy("LOAN_INTEREST_RATE", policy.AnnualInterestRate, defaults.AnnualInterestRate)
		policy.AnnualInterestRate = defaults.AnnualInterestRate
	}
	if policy.TenureMonths < 1 {
		warnPolicy("LOAN_TENURE_MONTHS", policy.TenureMonths, defaults.TenureMonths)
		policy.TenureMonths = defaults.TenureMonths
	}
	if policy.WindowDays < 1 {
		warnPolicy("DAILY_SERIES_WINDOW", policy.WindowDays, defaults.WindowDays)
		policy.WindowDays = defaults.WindowDays
	}

	return policy
}

func warnPolicy(key string, value, fallback any) {
	logrus.WithFields(logrus.Fields{
		"key":      key,
		"value":    value,
		"fallback": fallback,
	}).Warn("Valor de política inválido, usando padrão")
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
