package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Cache           Cache           `mapstructure:",squash"`
	Reference       Reference       `mapstructure:",squash"`
	ReferenceWarmup ReferenceWarmup `mapstructure:",squash"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cache struct {
	// TTL do memoizador da consulta de vendas por período
	SalesTTL time.Duration `mapstructure:"sales_cache_ttl"`
	// TTL das listas de referência dos seletores
	ReferenceTTL time.Duration `mapstructure:"reference_cache_ttl"`
}

// Reference parametriza as listas de referência dos seletores do painel.
type Reference struct {
	ProductMinCost      float64 `mapstructure:"reference_product_min_cost"`
	ProductDivisionsRaw string  `mapstructure:"reference_product_divisions"`
	CustomerRegionUF    string  `mapstructure:"reference_customer_region_uf"`
	ProductDivisions    []int   `mapstructure:"-"`
}

type ReferenceWarmup struct {
	CronSchedule string `mapstructure:"reference_warmup_cron"`
	Enabled      bool   `mapstructure:"reference_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vendas")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// A consulta de vendas fica memoizada por 10 minutos, como o painel
	// original; as listas de referência mudam pouco e podem viver mais.
	viper.SetDefault("SALES_CACHE_TTL", "10m")
	viper.SetDefault("REFERENCE_CACHE_TTL", "10m")

	viper.SetDefault("REFERENCE_PRODUCT_MIN_COST", 0.01)
	viper.SetDefault("REFERENCE_PRODUCT_DIVISIONS", "2,3,4,5,6,7,10,11,12,14,15,16")
	viper.SetDefault("REFERENCE_CUSTOMER_REGION_UF", "MG")

	viper.SetDefault("REFERENCE_WARMUP_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("REFERENCE_WARMUP_ENABLED", false)

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

	config.Reference.ProductDivisions, err = parseDivisions(config.Reference.ProductDivisionsRaw)
	if err != nil {
		return nil, fmt.Errorf("REFERENCE_PRODUCT_DIVISIONS inválido: %w", err)
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

// parseDivisions converte a lista de divisões permitida, separada por
// vírgula, em inteiros.
func parseDivisions(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	divisions := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		division, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		divisions = append(divisions, division)
	}
	return divisions, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
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
