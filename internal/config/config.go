package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Email    EmailConfig    `mapstructure:"email"`
	Static   StaticConfig   `mapstructure:"static"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// Environment is "development" or "production" and selects how the
	// frontend is served (dev-server proxy vs. built assets).
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode"`
	MaxConnections int    `mapstructure:"max_connections"`
}

// DSN returns the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AuthConfig holds session token configuration
type AuthConfig struct {
	// JWTSecret signs session tokens. It has no default: startup fails
	// when it is unset.
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
	Issuer        string `mapstructure:"issuer"`
	RateLimiting  bool   `mapstructure:"rate_limiting"`
}

// EmailConfig holds outbound email configuration
type EmailConfig struct {
	// Provider is the email provider to use: "gmail", "sendgrid", or "noop"
	Provider string `mapstructure:"provider"`
	// OperatorAddress is the fixed mailbox that receives contact-form
	// notifications.
	OperatorAddress string `mapstructure:"operator_address"`
	// SenderAddress is the "From" email address
	SenderAddress string `mapstructure:"sender_address"`
	// SenderName is the display name for the sender
	SenderName string `mapstructure:"sender_name"`
	// Gmail holds Gmail-specific configuration
	Gmail GmailEmailConfig `mapstructure:"gmail"`
	// SendGrid holds SendGrid-specific configuration
	SendGrid SendGridEmailConfig `mapstructure:"sendgrid"`
}

// GmailEmailConfig holds Gmail API configuration
type GmailEmailConfig struct {
	// CredentialsJSON is the service account credentials JSON content
	CredentialsJSON string `mapstructure:"credentials_json"`
	// ClientID for OAuth2 token-based auth (alternative to service account)
	ClientID string `mapstructure:"client_id"`
	// ClientSecret for OAuth2 token-based auth
	ClientSecret string `mapstructure:"client_secret"`
	// RefreshToken for OAuth2 token-based auth
	RefreshToken string `mapstructure:"refresh_token"`
}

// SendGridEmailConfig holds SendGrid API configuration
type SendGridEmailConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// StaticConfig holds frontend asset serving configuration
type StaticConfig struct {
	// Dir is the directory holding the built frontend assets.
	Dir string `mapstructure:"dir"`
	// DevServerURL is the frontend dev server proxied to in development.
	DevServerURL string `mapstructure:"dev_server_url"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/softwarepar")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("SOFTWAREPAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces that secrets are configured explicitly. There are no
// embedded fallback credentials: a missing secret is a startup error.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required")
	}
	if c.Email.SenderAddress == "" {
		return fmt.Errorf("config: email.sender_address is required")
	}
	if c.Email.OperatorAddress == "" {
		return fmt.Errorf("config: email.operator_address is required")
	}
	switch c.Email.Provider {
	case "gmail":
		g := c.Email.Gmail
		hasServiceAccount := g.CredentialsJSON != ""
		hasToken := g.ClientID != "" && g.ClientSecret != "" && g.RefreshToken != ""
		if !hasServiceAccount && !hasToken {
			return fmt.Errorf("config: email.gmail requires credentials_json or client_id/client_secret/refresh_token")
		}
	case "sendgrid":
		if c.Email.SendGrid.APIKey == "" {
			return fmt.Errorf("config: email.sendgrid.api_key is required")
		}
	case "noop":
		// no credentials needed
	default:
		return fmt.Errorf("config: unknown email provider %q", c.Email.Provider)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.environment", "development")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "softwarepar")
	v.SetDefault("database.user", "softwarepar")
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_connections", 25)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Auth defaults (secret intentionally has no default)
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("auth.issuer", "softwarepar")
	v.SetDefault("auth.rate_limiting", true)

	// Email defaults (credentials intentionally have no default)
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.sender_name", "SoftwarePar")

	// Static defaults
	v.SetDefault("static.dir", "client/public")
	v.SetDefault("static.dev_server_url", "http://localhost:5173")
}
