package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	AMQP     AMQPConfig
	Omise    OmiseConfig
	Media    MediaConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret     string
	ExpiryDays int
}

// CookieConfig holds session cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// AMQPConfig holds RabbitMQ configuration for event publishing.
// URL is optional; the API runs without a broker when it is empty.
type AMQPConfig struct {
	URL      string
	Exchange string
}

// OmiseConfig holds payment gateway keys.
// Keys are optional; checkout skips charging when they are empty.
type OmiseConfig struct {
	PublicKey string
	SecretKey string
}

// MediaConfig holds product image storage configuration
type MediaConfig struct {
	Dir     string
	BaseURL string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		AMQP: AMQPConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "shoplane.events"),
		},
		Omise: OmiseConfig{
			PublicKey: getEnv("OMISE_PUBLIC_KEY", ""),
			SecretKey: getEnv("OMISE_SECRET_KEY", ""),
		},
		Media: MediaConfig{
			Dir:     getEnv("MEDIA_DIR", "./media"),
			BaseURL: getEnv("MEDIA_BASE_URL", "/media"),
		},
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "shoplane"),
	}
}

// loadJWTConfig loads session token config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	expiryDays, err := strconv.Atoi(getEnv("TOKEN_EXPIRY_DAYS", "7"))
	if err != nil || expiryDays < 1 {
		// A garbage value would mint tokens that expire at issuance
		log.Printf("⚠️ Invalid TOKEN_EXPIRY_DAYS, using 7")
		expiryDays = 7
	}

	return JWTConfig{
		Secret:     getEnv(prefix+"JWT_SECRET", "default_secret"),
		ExpiryDays: expiryDays,
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "strict"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://shop.shoplane.dev"
	}
	return origins
}
