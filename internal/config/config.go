package config

// DefaultJWTSecret is the insecure placeholder secret used when no secret
// is configured. It exists so the server can run in demo environments;
// any real deployment must override it.
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	Environment string `mapstructure:"environment" validate:"required"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// JWTSecret signs every issued token. Rotating it invalidates all
	// previously issued tokens immediately.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required"`

	// TokenLifetimeMinutes is the fixed expiry window applied to every
	// issued token.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// UsingDefaultSecret reports whether the insecure placeholder secret is in
// use, so startup can warn about it.
func (c AuthConfig) UsingDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}
