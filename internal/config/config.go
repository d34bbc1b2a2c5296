package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App     App     `env-prefix:"APP_"`
		Logger  Logger  `env-prefix:"LOGGER_"`
		HTTP    HTTP
		CORS    CORS    `env-prefix:"CORS_"`
		Cache   Cache   `env-prefix:"CACHE_"`
		Metrics Metrics `env-prefix:"METRICS_"`
		Seed    bool    `env:"SEED" env-default:"true"`
		Env     string  `env:"ENV"  env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Name    string `env:"NAME"    validate:"required" env-default:"vape-inventory"`
		Version string `env:"VERSION" validate:"required" env-default:"1.0.0"`
	}

	// HTTP is intentionally unprefixed so the listen port stays the
	// plain PORT variable the original deployment used.
	HTTP struct {
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,gte=1,lte=65535" env-default:"5000"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"5s"`
		IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"60s"`
		ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    validate:"gte=10ms,lte=30s"         env-default:"10s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	CORS struct {
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" validate:"min=1" env-separator:"," env-default:"http://localhost:3000,http://localhost:5173"`
	}

	Cache struct {
		Capacity int           `env:"CAPACITY" validate:"min=1,max=100000" env-default:"8"`
		TTL      time.Duration `env:"TTL"      validate:"gt=0s,lte=24h"    env-default:"5m"`
	}

	Metrics struct {
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,gte=1,lte=65535" env-default:"9090"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"5s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	Logger struct {
		Level      string `env:"LEVEL"       env-default:"info"                         validate:"oneof=debug info warn error"`
		Filename   string `env:"FILENAME"    env-default:"./logs/inventory-service.log"`
		MaxSize    int    `env:"MAX_SIZE"    env-default:"100"                          validate:"min=1,max=1000"`
		MaxBackups int    `env:"MAX_BACKUPS" env-default:"3"                            validate:"min=0,max=20"`
		MaxAge     int    `env:"MAX_AGE"     env-default:"28"                           validate:"min=1,max=365"`
	}
)

// Load reads configuration from the file named by -config or
// CONFIG_PATH when one is given, and from plain environment variables
// otherwise.
func Load() (*Config, error) {
	const op = "config.Load"

	path := fetchConfigPath()
	if path == "" {
		var cfg Config
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: read env: %w", op, err)
		}
		if err := validate(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}
	return LoadPath(path)
}

func LoadPath(configPath string) (*Config, error) {
	const op = "config.LoadPath"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("%s: checking config file: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: read config: %w", op, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	v := validator.New()

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, ve := range validationErrs {
			messages = append(messages,
				fmt.Sprintf("%s=%v must satisfy '%s'", ve.Field(), ve.Value(), ve.Tag()))
		}
		return fmt.Errorf("config validation: %s", strings.Join(messages, "; "))
	}
	return fmt.Errorf("config validation: %w", err)
}

func fetchConfigPath() string {
	var path string
	flag.StringVar(&path, "config", "", "Path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}
