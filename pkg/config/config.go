// Package config loads the application configuration with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/telemetry"
)

const (
	defaultEnvironment = "local"
	defaultConfigDir   = "./config"
)

var (
	appConfig *AppConfig
	loadErr   error
	loadOnce  sync.Once
)

type AppConfig struct {
	App       App              `mapstructure:"app"`
	Logging   logger.Config    `mapstructure:"logging"`
	Cache     cache.Config     `mapstructure:"cache"`
	APIServer APIServerConfig  `mapstructure:"apiserver"`
	Telemetry telemetry.Config `mapstructure:"telemetry"`
	Seed      Seed             `mapstructure:"seed"`
}

type App struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type APIServerConfig struct {
	Host string     `mapstructure:"host"`
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// Seed points at a YAML file of records created at startup. Empty File disables seeding.
type Seed struct {
	File string `mapstructure:"file"`
}

// GetConfig returns the process configuration, loading it on first use from
// CONFIG_DIR (default ./config) for the environment named by APP_ENV.
func GetConfig() (*AppConfig, error) {
	loadOnce.Do(func() {
		dir := os.Getenv("CONFIG_DIR")
		if dir == "" {
			dir = defaultConfigDir
		}
		appConfig, loadErr = Load(dir, os.Getenv("APP_ENV"))
	})
	return appConfig, loadErr
}

// Load reads <dir>/<env>.yaml. Any key can be overridden through the
// environment, e.g. CACHE_DRIVER=redis or APISERVER_PORT=9090.
func Load(dir, env string) (*AppConfig, error) {
	if env == "" {
		env = defaultEnvironment
	}

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, env)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config for environment %s: %w", env, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, env string) {
	v.SetDefault("app.name", "bookroster")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", env)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.inmemory.defaultExpiration", -1)
	v.SetDefault("cache.inmemory.cleanupInterval", -1)
	v.SetDefault("apiserver.host", "0.0.0.0")
	v.SetDefault("apiserver.port", 5000)
	v.SetDefault("apiserver.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("apiserver.cors.allowed_headers", []string{"Origin", "Content-Type", "X-Request-ID"})
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "bookroster")
}

func (c *AppConfig) validate() error {
	if c.APIServer.Port <= 0 || c.APIServer.Port > 65535 {
		return fmt.Errorf("invalid apiserver port %d", c.APIServer.Port)
	}
	if c.Cache.Driver == "redis" && c.Cache.Redis == nil {
		return errors.New("cache.redis must be set when cache.driver is redis")
	}
	return nil
}
