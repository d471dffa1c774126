package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (backend URL, store location), secrets
// - default: Values common across all environments (timeouts, retry counts, alert TTL)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Backend BackendConfig
	Store   StoreConfig
	Coupon  CouponConfig
	Alert   AlertConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"7070"`
	// Host defaults to loopback; the Local API serves the UI shell on the same machine
	Host              string        `envconfig:"HOST" default:"127.0.0.1"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
	AllowLoopback    bool          `envconfig:"CORS_ALLOW_LOOPBACK" default:"false"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type BackendConfig struct {
	BaseURL          string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	ProductPath      string        `envconfig:"BACKEND_PRODUCT_PATH" default:"/products"`
	CouponPath       string        `envconfig:"BACKEND_COUPON_VALIDATE_PATH" default:"/coupons/validate"`
	Timeout          time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
	MaxRetries       int           `envconfig:"BACKEND_MAX_RETRIES" default:"2"`
	RetryInterval    time.Duration `envconfig:"BACKEND_RETRY_INTERVAL" default:"200ms"`
	RateLimitPerSec  float64       `envconfig:"BACKEND_RATE_LIMIT" default:"0"` // 0 disables throttling
	RateLimitBurst   int           `envconfig:"BACKEND_RATE_BURST" default:"5"`
	LogRequestBodies bool          `envconfig:"BACKEND_LOG_BODIES" default:"false"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"sqlite"` // memory | file | sqlite | postgres
	Dir    string `envconfig:"STORE_DIR" default:".storefront"`
	DSN    string `envconfig:"STORE_DSN"`
	Key    string `envconfig:"STORE_CART_KEY" default:"cartItems"`
}

type CouponConfig struct {
	CommitMaxRetries int           `envconfig:"COUPON_COMMIT_MAX_RETRIES" default:"3"`
	CommitBackoff    time.Duration `envconfig:"COUPON_COMMIT_BACKOFF" default:"25ms"`
}

type AlertConfig struct {
	TTL time.Duration `envconfig:"ALERT_TTL" default:"5s"`
}

type SessionConfig struct {
	Token string `envconfig:"SESSION_TOKEN"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "7879", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:5173"},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Backend: BackendConfig{
			BaseURL:        "http://localhost:0",
			ProductPath:    "/products",
			CouponPath:     "/coupons/validate",
			Timeout:        2 * time.Second,
			RetryInterval:  time.Millisecond,
			RateLimitBurst: 1,
		},
		Store: StoreConfig{
			Driver: "memory",
			Key:    "cartItems",
		},
		Coupon: CouponConfig{
			CommitMaxRetries: 3,
			CommitBackoff:    time.Millisecond,
		},
		Alert: AlertConfig{
			TTL: 5 * time.Second,
		},
	}
}
