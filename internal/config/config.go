// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. DOTFLIK_DATABASE_HOST.
const EnvPrefix = "DOTFLIK"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	GRPC       GRPCConfig       `mapstructure:"grpc"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	// LogLevel is one of the logrus level names (debug, info, warn, error)
	LogLevel    string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error"`
	Environment string `mapstructure:"environment" validate:"oneof=development production"`
}

// ServerConfig holds HTTP server and CORS configuration.
type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
	// AllowedOrigins is a comma-separated list of allowed origins for CORS
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// GRPCConfig holds the optional gRPC listener configuration.
type GRPCConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address" validate:"required_if=Enabled true"`
}

// DatabaseConfig holds database connection parameters.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" validate:"oneof=mysql postgres sqlite"`
	Host     string `mapstructure:"host" validate:"required_unless=Driver sqlite"`
	Port     int    `mapstructure:"port" validate:"required_unless=Driver sqlite,gte=0,max=65535"`
	User     string `mapstructure:"user" validate:"required_unless=Driver sqlite"`
	Password string `mapstructure:"password" validate:"required_unless=Driver sqlite"`
	Name     string `mapstructure:"name" validate:"required_unless=Driver sqlite"`
	// Path is the database file used by the sqlite driver
	Path string `mapstructure:"path" validate:"required_if=Driver sqlite"`
}

// PaginationConfig holds list endpoint limits.
type PaginationConfig struct {
	// MaxPageSize caps page_size; 0 or larger requests are served with this size
	MaxPageSize int `mapstructure:"max_page_size" validate:"min=1,max=1000"`
}

// Load reads configuration from an optional YAML file and DOTFLIK_* environment variables.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", "")
	v.SetDefault("grpc.enabled", false)
	v.SetDefault("grpc.address", ":9090")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "dotflik")
	v.SetDefault("database.password", "dotflik")
	v.SetDefault("database.name", "dotflik")
	v.SetDefault("database.path", "")
	v.SetDefault("pagination.max_page_size", 50)
	v.SetDefault("log_level", "info")
	v.SetDefault("environment", string(EnvDevelopment))
}

// validate is shared; validator caches struct metadata.
var validate = validator.New()

// Validate checks cfg and reports every invalid field in one error.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// ErrInvalidConfig indicates the loaded settings failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")
