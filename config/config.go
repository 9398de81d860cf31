package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log         Logger            `mapstructure:"logger"`
	DB          Database          `mapstructure:"database"`
	API         API               `mapstructure:"api"`
	Auth        Auth              `mapstructure:"auth"`
	Cache       Cache             `mapstructure:"cache"`
	Yahoo       YahooFinance      `mapstructure:"yahoo_finance"`
	Finnhub     FinnhubConfig     `mapstructure:"finnhub"`
	Polygon     PolygonConfig     `mapstructure:"polygon"`
	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
	Gemini      GeminiConfig      `mapstructure:"gemini"`
	Predictor   PredictorConfig   `mapstructure:"predictor"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port     int    `mapstructure:"port"`
	GraphDir string `mapstructure:"graph_dir"`
}

type Auth struct {
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
	BcryptCost  int           `mapstructure:"bcrypt_cost"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
	StockSnapshotTTL  time.Duration `mapstructure:"stock_snapshot_ttl"`
}

type YahooFinance struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	HistoryStart        string        `mapstructure:"history_start"`
}

type FinnhubConfig struct {
	BaseURL             string        `mapstructure:"base_url"`
	APIKey              string        `mapstructure:"api_key"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxArticles         int           `mapstructure:"max_articles"`
	CompanyNewsDays     int           `mapstructure:"company_news_days"`
}

type PolygonConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	PageLimit int           `mapstructure:"page_limit"`
}

type HuggingFaceConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Model      string        `mapstructure:"model"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries uint64        `mapstructure:"max_retries"`
}

type GeminiConfig struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseModel           string        `mapstructure:"base_model"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int           `mapstructure:"max_token_per_minute"`
}

type PredictorConfig struct {
	Command    string        `mapstructure:"command"`
	ScriptPath string        `mapstructure:"script_path"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func Load() (*Config, error) {
	// .env is optional, used for local development.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")

	viper.SetDefault("api.port", 5000)
	viper.SetDefault("api.graph_dir", "graphs")

	viper.SetDefault("auth.token_expiry", time.Hour)
	viper.SetDefault("auth.bcrypt_cost", 10)

	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("cache.stock_snapshot_ttl", time.Minute)

	viper.SetDefault("yahoo_finance.base_url", "https://query1.finance.yahoo.com/v8/finance/chart")
	viper.SetDefault("yahoo_finance.timeout", 10*time.Second)
	viper.SetDefault("yahoo_finance.max_request_per_minute", 30)
	viper.SetDefault("yahoo_finance.history_start", "2021-01-01")

	viper.SetDefault("finnhub.base_url", "https://finnhub.io/api/v1")
	viper.SetDefault("finnhub.timeout", 10*time.Second)
	viper.SetDefault("finnhub.max_request_per_minute", 60)
	viper.SetDefault("finnhub.max_articles", 10)
	viper.SetDefault("finnhub.company_news_days", 30)

	viper.SetDefault("polygon.base_url", "https://api.polygon.io")
	viper.SetDefault("polygon.timeout", 10*time.Second)
	viper.SetDefault("polygon.page_limit", 5)

	viper.SetDefault("huggingface.base_url", "https://api-inference.huggingface.co/models")
	viper.SetDefault("huggingface.model", "distilbert-base-uncased-finetuned-sst-2-english")
	viper.SetDefault("huggingface.timeout", 15*time.Second)
	viper.SetDefault("huggingface.max_retries", 3)

	viper.SetDefault("gemini.base_model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", 30*time.Second)
	viper.SetDefault("gemini.max_request_per_minute", 15)
	viper.SetDefault("gemini.max_token_per_minute", 1000000)

	viper.SetDefault("predictor.command", "python3")
	viper.SetDefault("predictor.script_path", "model/model.py")
	viper.SetDefault("predictor.timeout", 2*time.Minute)
}
