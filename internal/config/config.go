package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Platform  Platform  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	SpendSync SpendSync `mapstructure:",squash"`
	Decision  Decision  `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

// Platform contém a configuração da plataforma de anúncios externa
type Platform struct {
	BaseURL               string `mapstructure:"platform_base_url"`
	URL                   string `mapstructure:"-"`
	Version               string `mapstructure:"platform_version"`
	AccessToken           string `mapstructure:"platform_access_token"`
	RequestTimeoutSeconds int    `mapstructure:"platform_request_timeout_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// SpendSync configura o agendador de reconciliação de gastos
type SpendSync struct {
	CronSchedule        string `mapstructure:"spend_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"spend_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"spend_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"spend_sync_enabled"`
}

// Decision configura o avaliador automático de recomendações
type Decision struct {
	GracePeriodMinutes int `mapstructure:"decision_grace_period_minutes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/budget_optimizer")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PLATFORM_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("PLATFORM_VERSION", "v22.0")
	viper.SetDefault("PLATFORM_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("PLATFORM_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para a reconciliação de gastos
	viper.SetDefault("SPEND_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("SPEND_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("SPEND_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("SPEND_SYNC_ENABLED", false)           // Habilitar reconciliação diária

	viper.SetDefault("DECISION_GRACE_PERIOD_MINUTES", 60) // Janela de carência após alteração de orçamento

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

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

	config.Platform.URL = fmt.Sprintf("%s/%s", config.Platform.BaseURL, config.Platform.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
