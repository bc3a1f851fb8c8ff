package config

import (
	"errors"
	"fmt"
	"net/url"
	"salon/shared/constant"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingUpstreamURL = errors.New("APPS_SCRIPT_URL is required")
	ErrInvalidUpstreamURL = errors.New("APPS_SCRIPT_URL must be an absolute http(s) URL")
)

type Config struct {
	Server struct {
		Env       string `envconfig:"ENV"`
		LogLevel  string `envconfig:"LOG_LEVEL"`
		Port      string `envconfig:"PORT"       default:"5173"`
		Host      string `envconfig:"HOST"`
		StaticDir string `envconfig:"STATIC_DIR"`
		Shutdown  struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"salon"`
		Timezone string `envconfig:"TIMEZONE" default:"Asia/Bangkok"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Content-Type,X-Request-ID"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"*"`
			Enable           bool     `envconfig:"ENABLE"            default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool   `envconfig:"ENABLE"`
			Store         string `envconfig:"STORE"          default:"redis"`
			MaxRequests   int    `envconfig:"MAX_REQUESTS"   default:"60"`
			WindowSeconds int    `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	// Upstream is the Apps Script web app every gateway route forwards to.
	Upstream struct {
		URL            string `envconfig:"APPS_SCRIPT_URL"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"15"`
		SampleBytes    int    `envconfig:"SAMPLE_BYTES"    default:"200"`
	} `envconfig:"UPSTREAM"`

	// Client configures the booking workflow used by cmd/booker.
	Client struct {
		GatewayURL     string `envconfig:"GATEWAY_URL"     default:"http://localhost:5173"`
		DirectURL      string `envconfig:"DIRECT_URL"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"15"`
	} `envconfig:"CLIENT"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			Directory       string `envconfig:"DIRECTORY" default:"bookings"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		conf.Upstream.URL = strings.TrimSpace(conf.Upstream.URL)
		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}

// UsesRedisLimiter reports whether the enabled rate limiter keeps its counters in redis.
func (c *Config) UsesRedisLimiter() bool {
	return c.App.RateLimiter.Enable && c.App.RateLimiter.Store != constant.RateLimiterStoreMemory
}

// Validate reports settings the gateway cannot start without.
func (c *Config) Validate() error {
	raw := strings.TrimSpace(c.Upstream.URL)
	if raw == "" {
		return ErrMissingUpstreamURL
	}

	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return ErrInvalidUpstreamURL
	}

	return nil
}

// UpstreamTimeoutSeconds falls back to 15 when unset.
func (c *Config) UpstreamTimeoutSeconds() int {
	if c.Upstream.TimeoutSeconds <= 0 {
		return 15
	}

	return c.Upstream.TimeoutSeconds
}

// ClientTimeoutSeconds falls back to 15 when unset.
func (c *Config) ClientTimeoutSeconds() int {
	if c.Client.TimeoutSeconds <= 0 {
		return 15
	}

	return c.Client.TimeoutSeconds
}
