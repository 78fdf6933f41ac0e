// Package config defines the configuration structures shared across the application.
package config

import "fmt"

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GetAddr returns the host:port address the server listens on
func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the MySQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GetAddr returns the Redis host:port address
func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret           string `mapstructure:"secret" validate:"required"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes" validate:"required,min=1"`
}

// DiscordConfig holds the Discord identity provider configuration
type DiscordConfig struct {
	APIBaseURL     string `mapstructure:"api_base_url"`
	BotToken       string `mapstructure:"bot_token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// WorkshopConfig holds tunables for the workshop subsystem
type WorkshopConfig struct {
	ExplorePageSize         int `mapstructure:"explore_page_size" validate:"required,min=1"`
	ExploreCandidateCap     int `mapstructure:"explore_candidate_cap" validate:"required,min=1"`
	PopularityCacheTTLHours int `mapstructure:"popularity_cache_ttl_hours" validate:"required,min=1"`
	AliasSizeLimit          int `mapstructure:"alias_size_limit" validate:"required,min=1"`
	SnippetSizeLimit        int `mapstructure:"snippet_size_limit" validate:"required,min=1"`
	CodeVersionPageSize     int `mapstructure:"code_version_page_size" validate:"required,min=1"`
}

// PermissionConfig holds role enforcement configuration
type PermissionConfig struct {
	ModelPath string `mapstructure:"model_path"`
}
