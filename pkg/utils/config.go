package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Session  SessionConfig
	OTP      OTPConfig
	SMS      SMSConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
	DocsURL        string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a session cache should be wired.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type JWTConfig struct {
	Secret           string
	Issuer           string
	Audience         string
	AccessTTLMinutes int
}

func (c JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMinutes) * time.Minute
}

type SessionConfig struct {
	TTLHours            int
	CookieName          string
	CookieMaxAgeSeconds int
	CookieSecure        bool
}

func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

type OTPConfig struct {
	ExpiryMinutes      int
	Length             int
	ResetExpiryMinutes int
}

func (c OTPConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}

func (c OTPConfig) ResetExpiry() time.Duration {
	return time.Duration(c.ResetExpiryMinutes) * time.Minute
}

type SMSConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

const minJWTSecretLength = 32

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "ecommerce-auth")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("APP_DOCS_URL", "http://localhost:8080/docs/errors")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_ISSUER", "ecommerce-v1.0.0")
	viper.SetDefault("JWT_AUDIENCE", "api-v1.0.0")
	viper.SetDefault("JWT_ACCESS_TTL_MINUTES", 60)
	viper.SetDefault("SESSION_TTL_HOURS", 24*365)
	viper.SetDefault("COOKIE_NAME", "sid")
	viper.SetDefault("COOKIE_MAX_AGE_SECONDS", 60*60*24*7)
	viper.SetDefault("COOKIE_SECURE", true)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("RESET_EXPIRY_MINUTES", 10)

	// .env is optional; plain environment variables are enough in containers
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			AllowedOrigins: splitList(viper.GetString("ALLOWED_ORIGINS")),
			DocsURL:        viper.GetString("APP_DOCS_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:           viper.GetString("JWT_SECRET"),
			Issuer:           viper.GetString("JWT_ISSUER"),
			Audience:         viper.GetString("JWT_AUDIENCE"),
			AccessTTLMinutes: viper.GetInt("JWT_ACCESS_TTL_MINUTES"),
		},
		Session: SessionConfig{
			TTLHours:            viper.GetInt("SESSION_TTL_HOURS"),
			CookieName:          viper.GetString("COOKIE_NAME"),
			CookieMaxAgeSeconds: viper.GetInt("COOKIE_MAX_AGE_SECONDS"),
			CookieSecure:        viper.GetBool("COOKIE_SECURE"),
		},
		OTP: OTPConfig{
			ExpiryMinutes:      viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:             viper.GetInt("OTP_LENGTH"),
			ResetExpiryMinutes: viper.GetInt("RESET_EXPIRY_MINUTES"),
		},
		SMS: SMSConfig{
			AccountSID: viper.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:  viper.GetString("TWILIO_AUTH_TOKEN"),
			FromNumber: viper.GetString("TWILIO_FROM_NUMBER"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects configurations the server cannot safely start with.
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}
	if c.JWT.AccessTTLMinutes <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL_MINUTES must be positive")
	}
	if c.Session.TTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	if c.OTP.ExpiryMinutes <= 0 || c.OTP.ResetExpiryMinutes <= 0 {
		return fmt.Errorf("OTP expiry must be positive")
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
