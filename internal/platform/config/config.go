package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Token transport policies accepted by TOKEN_TRANSPORT. Exactly one is active
// per deployment; the auth middleware reads tokens only from that source.
const (
	TransportCookie = "cookie"
	TransportHeader = "header"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
	IsProduction bool
	CORSOrigin   string

	// Access Token Config
	AccessTokenSecret         string
	AccessTokenExpiryDuration time.Duration
	JWTIssuer                 string

	// Refresh Token Config
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration

	// BcryptCost is the work factor for password hashing.
	BcryptCost int

	// TokenTransport selects where the auth middleware looks for the access
	// token: TransportCookie or TransportHeader.
	TokenTransport string

	AccessTokenCookieName  string
	RefreshTokenCookieName string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017/user_account_app")
	viper.SetDefault("MONGODB_DB_NAME", "user_account_app")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	viper.SetDefault("ACCESS_TOKEN_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_DURATION", "15m")
	viper.SetDefault("JWT_ISSUER", "user-account-app")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "default_insecure_refresh_secret_please_change_this_!@#$")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("TOKEN_TRANSPORT", TransportCookie)
	viper.SetDefault("ACCESS_TOKEN_COOKIE_NAME", "accessToken")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refreshToken")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("MONGODB_URI")
	cfg.DatabaseName = viper.GetString("MONGODB_DB_NAME")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CORSOrigin = viper.GetString("CORS_ORIGIN")

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: ACCESS_TOKEN_SECRET environment variable not set. Using default insecure key.")
	}

	accessExpiryStr := viper.GetString("ACCESS_TOKEN_EXPIRY_DURATION")
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		accessExpiry = 15 * time.Minute
		log.Printf("Warning: Invalid value for ACCESS_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", accessExpiryStr, accessExpiry)
	}
	cfg.AccessTokenExpiryDuration = accessExpiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "default_insecure_refresh_secret_please_change_this_!@#$" {
		log.Println("Warning: REFRESH_TOKEN_SECRET is not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
	}

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry)
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiry

	cfg.BcryptCost = viper.GetInt("BCRYPT_COST")
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		log.Printf("Warning: BCRYPT_COST %d out of range. Defaulting to %d.\n", cfg.BcryptCost, bcrypt.DefaultCost)
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	cfg.TokenTransport = viper.GetString("TOKEN_TRANSPORT")
	if cfg.TokenTransport != TransportCookie && cfg.TokenTransport != TransportHeader {
		log.Printf("Warning: Invalid value for TOKEN_TRANSPORT ('%s'). Defaulting to %s.\n", cfg.TokenTransport, TransportCookie)
		cfg.TokenTransport = TransportCookie
	}

	cfg.AccessTokenCookieName = viper.GetString("ACCESS_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")

	return cfg, nil
}
