package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Mail     *MailConfig     `mapstructure:"mail"`
	Tracing  *TracingConfig  `mapstructure:"tracing"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type MailConfig struct {
	Provider    string     `mapstructure:"provider"`
	FromAddress string     `mapstructure:"from_address"`
	FromName    string     `mapstructure:"from_name"`
	SES         *SESConfig `mapstructure:"ses"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type TracingConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
}

// Load reads the YAML config at path and overlays EVENTDESK_* environment
// variables (e.g. EVENTDESK_POSTGRES_PASSWORD overrides postgres.password).
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("EVENTDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}
	if conf.Tracing == nil {
		conf.Tracing = &TracingConfig{}
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, reloading", zap.String("file", e.Name))
		if err := viper.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})
	viper.WatchConfig()

	return conf, nil
}
