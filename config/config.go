package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig              `mapstructure:"server"`
	Database   DatabaseConfig            `mapstructure:"database"`
	Redis      RedisConfig               `mapstructure:"redis"`
	JWT        JWTConfig                 `mapstructure:"jwt"`
	Log        LogConfig                 `mapstructure:"log"`
	Lottery    LotteryConfig             `mapstructure:"lottery"`
	Storage    StorageConfig             `mapstructure:"storage"`
	Notifier   NotifierConfig            `mapstructure:"notifier"`
	RateLimit  RateLimitConfig           `mapstructure:"ratelimit"`
	Currencies map[string]CurrencyConfig `mapstructure:"currencies"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig configures the admin bearer tokens.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // console output for local runs
}

// LotteryConfig controls the drawing cadence, timers and persistence retries.
type LotteryConfig struct {
	DataDir           string        `mapstructure:"data_dir"`
	DrawSchedule      string        `mapstructure:"draw_schedule"` // 5-field cron, default Sunday 00:00
	Timezone          string        `mapstructure:"timezone"`
	TickInterval      time.Duration `mapstructure:"tick_interval"`
	BroadcastInterval time.Duration `mapstructure:"broadcast_interval"`
	BroadcastDelay    time.Duration `mapstructure:"broadcast_delay"`
	SaveTimeout       time.Duration `mapstructure:"save_timeout"`
	SaveRetries       int           `mapstructure:"save_retries"`
	SaveRetryDelay    time.Duration `mapstructure:"save_retry_delay"`
	NonceTTL          time.Duration `mapstructure:"nonce_ttl"`
	HistoryLimit      int           `mapstructure:"history_limit"`
}

// Location resolves the configured time zone.
func (l LotteryConfig) Location() (*time.Location, error) {
	if l.Timezone == "" || strings.EqualFold(l.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", l.Timezone, err)
	}
	return loc, nil
}

// StorageConfig selects a backend per persisted concern.
type StorageConfig struct {
	State    string `mapstructure:"state"`    // file, postgres, memory
	Rewards  string `mapstructure:"rewards"`  // file, postgres, redis, memory
	Presence string `mapstructure:"presence"` // memory, redis
	History  string `mapstructure:"history"`  // memory, postgres
}

// NotifierConfig configures the outbound notice webhook to the game server.
type NotifierConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"` // empty = log only
	Secret     string        `mapstructure:"secret"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type RateLimitConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	EntryLimit  int64         `mapstructure:"entry_limit"`
	EntryWindow time.Duration `mapstructure:"entry_window"`
	ReadLimit   int64         `mapstructure:"read_limit"`
	ReadWindow  time.Duration `mapstructure:"read_window"`
}

// CurrencyConfig describes one lottery currency and the provider backing it.
type CurrencyConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Name     string `mapstructure:"name"`
	Symbol   string `mapstructure:"symbol"`
	Unit     string `mapstructure:"unit"`     // suffix word, e.g. "Tokens"; empty = symbol prefix
	Provider string `mapstructure:"provider"` // economy, ledger, memory
}

var builtinOrder = []string{"coins", "tokens", "gems", "pokecoins"}

var defaultCurrencies = map[string]CurrencyConfig{
	"coins":     {Enabled: true, Name: "Coins", Symbol: "$", Provider: "economy"},
	"tokens":    {Enabled: true, Name: "Tokens", Symbol: "⛃", Unit: "Tokens", Provider: "ledger"},
	"gems":      {Enabled: true, Name: "Gems", Symbol: "♦", Unit: "Gems", Provider: "ledger"},
	"pokecoins": {Enabled: false, Name: "PokeCoins", Symbol: "₽", Unit: "PokeCoins", Provider: "economy"},
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LOTTERY_.
// Nested keys use underscore: LOTTERY_REDIS_HOST, LOTTERY_CURRENCIES_GEMS_ENABLED, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "weekly_lottery")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "weekly-lottery")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("lottery.data_dir", "data")
	v.SetDefault("lottery.draw_schedule", "0 0 * * 0")
	v.SetDefault("lottery.timezone", "Local")
	v.SetDefault("lottery.tick_interval", "1m")
	v.SetDefault("lottery.broadcast_interval", "30m")
	v.SetDefault("lottery.broadcast_delay", "30s")
	v.SetDefault("lottery.save_timeout", "5s")
	v.SetDefault("lottery.save_retries", 3)
	v.SetDefault("lottery.save_retry_delay", "500ms")
	v.SetDefault("lottery.nonce_ttl", "10m")
	v.SetDefault("lottery.history_limit", 20)

	v.SetDefault("storage.state", "file")
	v.SetDefault("storage.rewards", "file")
	v.SetDefault("storage.presence", "memory")
	v.SetDefault("storage.history", "memory")

	v.SetDefault("notifier.webhook_url", "")
	v.SetDefault("notifier.secret", "")
	v.SetDefault("notifier.timeout", "10s")

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.entry_limit", 30)
	v.SetDefault("ratelimit.entry_window", "1m")
	v.SetDefault("ratelimit.read_limit", 120)
	v.SetDefault("ratelimit.read_window", "1m")

	for id, c := range defaultCurrencies {
		v.SetDefault("currencies."+id+".enabled", c.Enabled)
		v.SetDefault("currencies."+id+".name", c.Name)
		v.SetDefault("currencies."+id+".symbol", c.Symbol)
		v.SetDefault("currencies."+id+".unit", c.Unit)
		v.SetDefault("currencies."+id+".provider", c.Provider)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("LOTTERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing file is fine, env vars and defaults can carry everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Lottery.TickInterval <= 0 {
		return fmt.Errorf("lottery.tick_interval must be positive")
	}
	if c.Lottery.BroadcastInterval <= 0 {
		return fmt.Errorf("lottery.broadcast_interval must be positive")
	}
	if c.Lottery.SaveRetries < 1 {
		c.Lottery.SaveRetries = 1
	}
	if _, err := c.Lottery.Location(); err != nil {
		return err
	}
	return nil
}

// EnabledCurrencies returns the ids of enabled currencies, built-ins first in
// their usual display order, then any extra currencies alphabetically.
func (c *Config) EnabledCurrencies() []string {
	var ids, extra []string
	for _, id := range builtinOrder {
		if cc, ok := c.Currencies[id]; ok && cc.Enabled {
			ids = append(ids, id)
		}
	}
	for id, cc := range c.Currencies {
		if cc.Enabled && !slices.Contains(builtinOrder, id) {
			extra = append(extra, id)
		}
	}
	slices.Sort(extra)
	return append(ids, extra...)
}
