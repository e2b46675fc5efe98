package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"bar-bike/logx"
)

type StoreConfig struct {
	Driver      string `envconfig:"STORE_DRIVER" default:"bolt"`
	BoltPath    string `envconfig:"STORE_BOLT_PATH" default:"./data/barbike.db"`
	ProductsKey string `envconfig:"STORE_PRODUCTS_KEY" default:"barbike_db_products_v1"`
	UsersKey    string `envconfig:"STORE_USERS_KEY" default:"barbike_db_users_v1"`
	RedisPrefix string `envconfig:"STORE_REDIS_PREFIX" default:""`
}

type DatabaseConfig struct {
	URL      string `envconfig:"DATABASE_URL"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"barbike"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

type RedisConfig struct {
	URL      string `envconfig:"REDIS_URL"`
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Pass     string `envconfig:"SMTP_PASS"`
	From     string `envconfig:"SMTP_FROM"`
	NotifyTo string `envconfig:"SMTP_NOTIFY_TO"`
}

func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.User != "" && s.Pass != "" && s.NotifyTo != ""
}

type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	Port      string `envconfig:"APP_PORT" default:"8082"`
	OriginURL string `envconfig:"ORIGIN_URL"`

	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SMTP     SMTPConfig

	JWTSecret       string        `envconfig:"JWT_SECRET" default:"secret"`
	JWTExpiry       time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
	PasswordHashing bool          `envconfig:"PASSWORD_HASHING" default:"false"`

	UploadDir     string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	MaxUploadSize int64  `envconfig:"MAX_UPLOAD_SIZE" default:"5242880"`
	CloudinaryURL string `envconfig:"CLOUDINARY_URL"`

	WhatsAppPhone string        `envconfig:"WHATSAPP_PHONE" default:"972543043045"`
	CartTTL       time.Duration `envconfig:"CART_TTL" default:"24h"`

	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	PitchTimeout time.Duration `envconfig:"PITCH_TIMEOUT" default:"10s"`
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LogEnvironment maps APP_ENV onto the logger presets.
func (c *Config) LogEnvironment() logx.Environment {
	switch c.AppEnv {
	case "production":
		return logx.Production
	case "testing", "test":
		return logx.Testing
	default:
		return logx.Development
	}
}

var AppConfig *Config

// LoadConfig reads .env (when present) and the process environment into AppConfig.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logx.Warn().Msg(".env file not found, using system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	AppConfig = &cfg
	return &cfg, nil
}
