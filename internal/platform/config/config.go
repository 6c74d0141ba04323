package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/swiftbank/bank_records_app/internal/utils"
)

// Config holds application configuration. All secrets (JWT signing key,
// admin recovery key) are injected here at process start and never
// hardcoded anywhere else.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AdminRecoveryKey gates the email-only admin password reset. Empty
	// disables that route entirely.
	AdminRecoveryKey string

	// AuthRateLimit is a ulule/limiter formatted rate (e.g. "10-M") applied
	// to admin signup and login.
	AuthRateLimit string

	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "2h")
	viper.SetDefault("JWT_ISSUER", "bank-records-app")
	viper.SetDefault("ADMIN_RECOVERY_KEY", "")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		// An ephemeral key keeps the process usable in dev; tokens do not
		// survive a restart.
		generated, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = generated
		log.Println("Warning: JWT_SECRET environment variable not set. Generated an ephemeral signing key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 2 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminRecoveryKey = viper.GetString("ADMIN_RECOVERY_KEY")
	if cfg.AdminRecoveryKey == "" {
		log.Println("Warning: ADMIN_RECOVERY_KEY not set. The email-only admin password reset route is disabled.")
	}

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	return cfg, nil
}
