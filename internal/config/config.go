// Package config arma la configuración del servicio: defaults -> archivo YAML -> variables de entorno.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port    string `yaml:"port"`
	AppName string `yaml:"app_name"`

	DB  DB  `yaml:"db"`
	Log Log `yaml:"log"`

	Auth         Auth         `yaml:"auth"`
	Capabilities Capabilities `yaml:"capabilities"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DB struct {
	Driver      string `yaml:"driver"` // memory | postgres | sqlite
	DSN         string `yaml:"dsn"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

type Auth struct {
	// JWTSecret vacío = modo dev (headers X-Debug-*).
	JWTSecret string `yaml:"jwt_secret"`
}

type Capabilities struct {
	URL      string        `yaml:"url"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
	AllowAll bool          `yaml:"allow_all"`
}

func Default() Config {
	return Config{
		Port:    "8080",
		AppName: "vet-clinic",
		DB: DB{
			Driver:      "memory",
			AutoMigrate: true,
		},
		Log: Log{Level: "info", Format: "text"},
		Capabilities: Capabilities{
			Timeout: 5 * time.Second,
		},
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load aplica, en orden, los defaults, el archivo (si path no está vacío) y el entorno.
// lookup suele ser os.LookupEnv.
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	env := envReader{lookup: lookup}
	cfg.Port = env.str("PORT", cfg.Port)
	cfg.AppName = env.str("APP_NAME", cfg.AppName)
	cfg.DB.Driver = env.str("DB_DRIVER", cfg.DB.Driver)
	cfg.DB.DSN = env.str("DB_DSN", cfg.DB.DSN)
	cfg.DB.AutoMigrate = env.boolean("DB_AUTO_MIGRATE", cfg.DB.AutoMigrate)
	cfg.Log.Level = env.str("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = env.str("LOG_FORMAT", cfg.Log.Format)
	cfg.Auth.JWTSecret = env.str("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Capabilities.URL = env.str("CAPABILITIES_URL", cfg.Capabilities.URL)
	cfg.Capabilities.APIKey = env.str("CAPABILITIES_API_KEY", cfg.Capabilities.APIKey)
	cfg.Capabilities.AllowAll = env.boolean("ALLOW_ALL_CAPABILITIES", cfg.Capabilities.AllowAll)
	if env.err != nil {
		return Config{}, env.err
	}

	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if p, err := strconv.Atoi(strings.TrimSpace(c.Port)); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q", c.Port))
	}
	switch c.DB.Driver {
	case "memory":
	case "postgres":
		if strings.TrimSpace(c.DB.DSN) == "" {
			errs = append(errs, errors.New("db.dsn is required for driver postgres"))
		}
	case "sqlite":
		// dsn vacío usa el archivo por defecto
	default:
		errs = append(errs, fmt.Errorf("unknown db driver %q", c.DB.Driver))
	}
	if f := strings.ToLower(strings.TrimSpace(c.Log.Format)); f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.Capabilities.URL != "" && c.Capabilities.APIKey == "" {
		errs = append(errs, errors.New("capabilities.api_key is required when capabilities.url is set"))
	}
	return errors.Join(errs...)
}

func (c Config) Addr() string {
	return ":" + strings.TrimSpace(c.Port)
}

type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) str(k, fallback string) string {
	if v, ok := e.lookup(k); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (e *envReader) boolean(k string, fallback bool) bool {
	v, ok := e.lookup(k)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	if e.err == nil {
		e.err = fmt.Errorf("%s: invalid boolean %q", k, v)
	}
	return fallback
}
