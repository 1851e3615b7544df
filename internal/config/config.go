package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

// Backend describes the remote storefront API every catalog, address, order and payment call goes to.
type Backend struct {
	BaseURL          string        `yaml:"BASE_URL" env:"BACKEND_BASE_URL" env-required:"true"`
	Timeout          time.Duration `yaml:"TIMEOUT" env:"BACKEND_TIMEOUT" env-default:"10s"`
	ServiceToken     string        `yaml:"SERVICE_TOKEN" env:"BACKEND_SERVICE_TOKEN"`
	StockConcurrency int           `yaml:"STOCK_CONCURRENCY" env:"BACKEND_STOCK_CONCURRENCY" env-default:"8"`
}

type Session struct {
	CookieName string        `yaml:"COOKIE_NAME" env:"SESSION_COOKIE_NAME" env-default:"storefront_session"`
	TTL        time.Duration `yaml:"TTL" env:"SESSION_TTL" env-default:"168h"`
	Secure     bool          `yaml:"SECURE" env:"SESSION_SECURE" env-default:"false"`
}

type Database struct {
	Enabled         bool          `yaml:"ENABLED" env:"PG_ENABLED" env-default:"false"`
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15m"`
}

type Security struct {
	// JWTKey verifies tokens issued by the auth API. Empty means claims are read without verification.
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY"`
}

type ShippingTier struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	FloorPrice     float64 `yaml:"floor_price"`
	Rate           float64 `yaml:"rate"`
	EtaDescription string  `yaml:"eta"`
	EtaDays        int     `yaml:"eta_days"`
}

type Shipping struct {
	Tiers []ShippingTier `yaml:"tiers"`
}

type CouponEntry struct {
	Code        string  `yaml:"code"`
	Kind        string  `yaml:"kind"`
	Value       float64 `yaml:"value"`
	MinSubtotal float64 `yaml:"min_subtotal"`
}

type Coupons struct {
	Source string        `yaml:"SOURCE" env:"COUPONS_SOURCE" env-default:"static"`
	Static []CouponEntry `yaml:"static"`
}

type Stripe struct {
	Enabled       bool   `yaml:"ENABLED" env:"STRIPE_ENABLED" env-default:"false"`
	APIKey        string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	WebhookSecret string `yaml:"STRIPE_WEBHOOK_SECRET" env:"STRIPE_WEBHOOK_SECRET" env-default:""`
	Currency      string `yaml:"STRIPE_CURRENCY" env:"STRIPE_CURRENCY" env-default:"brl"`
}

type SendGrid struct {
	Enabled   bool   `yaml:"ENABLED" env:"SENDGRID_ENABLED" env-default:"false"`
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"pedidos@discool.com.br"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Discool"`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"http://localhost:4318/v1/traces"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type CacheConfig struct {
	DefaultTTL  time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"10m"`
	CategoryTTL time.Duration `yaml:"category_ttl" env:"CACHE_CATEGORY_TTL" env-default:"5m"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Backend      Backend      `yaml:"backend"`
	Session      Session      `yaml:"session"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Security     Security     `yaml:"security"`
	Shipping     Shipping     `yaml:"shipping"`
	Coupons      Coupons      `yaml:"coupons"`
	Stripe       Stripe       `yaml:"stripe"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Otel         Otel         `yaml:"otel"`
	Cache        CacheConfig  `yaml:"cache"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the storefront config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Shipping.Tiers) == 0 {
		c.Shipping.Tiers = DefaultShippingTiers()
	}

	if c.Coupons.Source == "static" && len(c.Coupons.Static) == 0 {
		c.Coupons.Static = DefaultCoupons()
	}

	if c.Backend.StockConcurrency < 1 {
		c.Backend.StockConcurrency = 1
	}
}

// DefaultShippingTiers are simulation values; deployments are expected to override them.
func DefaultShippingTiers() []ShippingTier {
	return []ShippingTier{
		{ID: "economico", Name: "Econômico", FloorPrice: 15, Rate: 0.05, EtaDescription: "8 a 12 dias úteis", EtaDays: 12},
		{ID: "padrao", Name: "Padrão", FloorPrice: 20, Rate: 0.08, EtaDescription: "5 a 7 dias úteis", EtaDays: 7},
		{ID: "expresso", Name: "Expresso", FloorPrice: 35, Rate: 0.12, EtaDescription: "1 a 3 dias úteis", EtaDays: 3},
	}
}

func DefaultCoupons() []CouponEntry {
	return []CouponEntry{
		{Code: "DISCOOL10", Kind: "percentage", Value: 10, MinSubtotal: 50},
		{Code: "VINIL20", Kind: "fixed", Value: 20, MinSubtotal: 100},
		{Code: "FRETEGRATIS", Kind: "free_shipping", Value: 0, MinSubtotal: 150},
	}
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	if r.Username == "" && r.Password == "" {
		return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
	}

	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
