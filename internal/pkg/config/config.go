package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

// Config is the immutable application configuration, loaded once at startup
// and passed into component constructors. Business logic never reads the
// process environment directly.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	BotToken        string  `env:"BOT_TOKEN"`
	Operators       []int64 `env:"OPERATORS"`
	AdminChatID     string  `env:"ADMIN_CHAT_ID"`
	PublicName      string  `env:"PUBLIC_NAME"`
	TelegramAPIBase string  `env:"TELEGRAM_API_BASE, default=https://api.telegram.org"`

	Wallets WalletConfig
	Pricing PricingConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// WalletConfig holds the deposit address configured per asset.
type WalletConfig struct {
	USDTBEP20 string `env:"WALLET_USDT_BEP20"`
	USDTTRC20 string `env:"WALLET_USDT_TRC20"`
	BTC       string `env:"WALLET_BTC"`
	ETH       string `env:"WALLET_ETH"`
}

// PricingConfig holds the deterministic quote formula inputs.
type PricingConfig struct {
	BaseRubPerUSD float64 `env:"BASE_RUB_PER_USD, default=95"`
	SpreadPct     float64 `env:"SPREAD_PCT,       default=1"`
	FeeFixedRub   float64 `env:"FEE_FIXED_RUB,    default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=exchange"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// OperatorIDs returns the operator allow-list as a membership set.
func (c *Config) OperatorIDs() map[int64]struct{} {
	set := make(map[int64]struct{}, len(c.Operators))
	for _, id := range c.Operators {
		set[id] = struct{}{}
	}
	return set
}

// Addresses returns the deposit address map, omitting unconfigured assets.
func (w WalletConfig) Addresses() map[domain.Asset]string {
	out := make(map[domain.Asset]string, 4)
	if w.USDTBEP20 != "" {
		out[domain.AssetUSDTBEP20] = w.USDTBEP20
	}
	if w.USDTTRC20 != "" {
		out[domain.AssetUSDTTRC20] = w.USDTTRC20
	}
	if w.BTC != "" {
		out[domain.AssetBTC] = w.BTC
	}
	if w.ETH != "" {
		out[domain.AssetETH] = w.ETH
	}
	return out
}
