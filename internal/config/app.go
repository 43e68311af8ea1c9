package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"mnestswap/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultFile = "config.yaml"

type HTTPServer struct {
	Port                   string `mapstructure:"port"`
	ReadHeaderTimeoutSec   int    `mapstructure:"read_header_timeout_seconds"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Balances struct {
	MNest int64 `mapstructure:"mnest"`
	USDT  int64 `mapstructure:"usdt"`
}

type Swap struct {
	ExchangeRate float64  `mapstructure:"exchange_rate"`
	Owner        string   `mapstructure:"owner"`
	Balances     Balances `mapstructure:"balances"`
	Precision    int32    `mapstructure:"precision"`
	Strict       bool     `mapstructure:"strict"`
}

// Account builds the immutable mock account the service reads from.
func (s Swap) Account() domain.Account {
	return domain.Account{
		ExchangeRate: domain.ExchangeRate(s.ExchangeRate),
		Owner:        s.Owner,
		Balances:     domain.Balances{MNest: s.Balances.MNest, USDT: s.Balances.USDT},
	}
}

type Session struct {
	MaxItems   int64 `mapstructure:"max_items"`
	TTLSeconds int   `mapstructure:"ttl_seconds"`
}

func (s Session) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}

type Wallet struct {
	ManifestURL          string `mapstructure:"manifest_url"`
	MountID              string `mapstructure:"mount_id"`
	CheckIntervalSeconds int    `mapstructure:"check_interval_seconds"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	Swap       Swap       `mapstructure:"swap"`
	Session    Session    `mapstructure:"session"`
	Wallet     Wallet     `mapstructure:"wallet"`
}

// Init loads .env (optional) and the yaml config file (optional), then
// applies environment overrides. Missing files fall back to defaults.
func Init(configFile string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	if configFile == "" {
		configFile = DefaultFile
	}
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.read_header_timeout_seconds", 5)
	v.SetDefault("http_server.shutdown_timeout_seconds", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("swap.exchange_rate", 5)
	v.SetDefault("swap.owner", "0x1234...5678")
	v.SetDefault("swap.balances.mnest", 1000000)
	v.SetDefault("swap.balances.usdt", 200000)
	v.SetDefault("swap.precision", 6)
	v.SetDefault("swap.strict", false)
	v.SetDefault("session.max_items", 10000)
	v.SetDefault("session.ttl_seconds", 3600)
	v.SetDefault("wallet.manifest_url", "https://raw.githubusercontent.com/ton-community/tutorials/main/03-client/test/public/tonconnect-manifest.json")
	v.SetDefault("wallet.mount_id", "ton-connect")
	v.SetDefault("wallet.check_interval_seconds", 600)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// logging env vars
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// swap env vars
	_ = v.BindEnv("swap.exchange_rate", "SWAP_EXCHANGE_RATE")
	_ = v.BindEnv("swap.owner", "SWAP_OWNER")
	_ = v.BindEnv("swap.strict", "SWAP_STRICT")

	// wallet env vars
	_ = v.BindEnv("wallet.manifest_url", "WALLET_MANIFEST_URL")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Swap.Account().Validate(); err != nil {
		return nil, fmt.Errorf("invalid swap config: %w", err)
	}
	if cfg.Swap.Precision < 0 || cfg.Swap.Precision > 20 {
		return nil, fmt.Errorf("invalid swap config: precision must be between 0 and 20, got %d", cfg.Swap.Precision)
	}

	return &cfg, nil
}
