package appconf

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Briscoooe/irish-rail-rest-api/internal/irishrail"
	"github.com/Briscoooe/irish-rail-rest-api/internal/logging"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps the -env flag value to an Environment. Unknown
// values are treated as Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(env) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port           int
	Env            Environment
	ApiKeys        []string
	RateLimit      int
	LogLevel       slog.Level
	AllowedOrigins []string
	FeedBaseURL    string
	FeedTimeout    time.Duration
	FeedRetries    int
}

// FeedConfig returns the settings of the realtime feed client.
func (c Config) FeedConfig() irishrail.Config {
	return irishrail.Config{
		BaseURL: c.FeedBaseURL,
		Timeout: c.FeedTimeout,
		Retries: c.FeedRetries,
	}
}

// LoadDotEnv loads .env and then .env.local, which overrides it. Missing
// files are ignored.
func LoadDotEnv(dir string) {
	_ = godotenv.Load(dir + "/.env")
	_ = godotenv.Overload(dir + "/.env.local")
}

// Parse reads the configuration from command-line arguments. Every flag
// defaults to its environment variable when set.
func Parse(args []string, getenv func(string) string) (Config, error) {
	var cfg Config
	var env, apiKeys, origins, logLevel string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.Port, "port", envInt(getenv, "PORT", 4000), "API server port")
	fs.StringVar(&env, "env", envString(getenv, "APP_ENV", "development"), "Environment (development|test|production)")
	fs.StringVar(&apiKeys, "api-keys", getenv("API_KEYS"), "Comma separated API keys; empty disables key checks")
	fs.IntVar(&cfg.RateLimit, "rate-limit", envInt(getenv, "RATE_LIMIT", 100), "Requests per second allowed per client")
	fs.StringVar(&logLevel, "log-level", envString(getenv, "LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	fs.StringVar(&origins, "allowed-origins", envString(getenv, "ALLOWED_ORIGINS", "*"), "Comma separated CORS origins")
	fs.StringVar(&cfg.FeedBaseURL, "feed-url", envString(getenv, "FEED_BASE_URL", irishrail.DefaultBaseURL), "Base URL of the realtime XML feed")
	fs.DurationVar(&cfg.FeedTimeout, "feed-timeout", envDuration(getenv, "FEED_TIMEOUT", irishrail.DefaultTimeout), "Timeout of one feed request")
	fs.IntVar(&cfg.FeedRetries, "feed-retries", envInt(getenv, "FEED_RETRIES", 0), "Extra attempts after a failed feed request")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return Config{}, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	cfg.Env = EnvFlagToEnvironment(env)
	cfg.LogLevel = level
	cfg.ApiKeys = splitList(apiKeys)
	cfg.AllowedOrigins = splitList(origins)
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envString(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) int {
	if n, err := strconv.Atoi(getenv(key)); err == nil {
		return n
	}
	return fallback
}

func envDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(getenv(key)); err == nil {
		return d
	}
	return fallback
}
