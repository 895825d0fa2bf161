package config

import (
	"errors"
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config — серверные настройки. Секрет подписи обязателен: без него процесс
// не должен обслуживать трафик.
type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseDSN string `env:"DATABASE_URI"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	SigningSecret    string        `env:"SIGNING_SECRET"`
	TokenTTL         time.Duration `env:"TOKEN_TTL"`
	PasswordHashCost int           `env:"PASSWORD_HASH_COST"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`

	SignedURLTTL time.Duration `env:"SIGNED_URL_TTL"`
	UploadMaxMB  int           `env:"UPLOAD_MAX_MB"`
}

// ErrMissingSecret — фатальная ошибка конфигурации при старте.
var ErrMissingSecret = errors.New("config: SIGNING_SECRET is required")

// NewConfig читает .env, переменные окружения и флаги (флаги работают только
// если значение не задано через окружение).
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "адрес и порт сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.SigningSecret, "signing-secret", cfg.SigningSecret, "секрет для подписи токенов и вывода ключа шифрования")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни bearer-токена")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	flag.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "S3-совместимый endpoint объектного хранилища")
	flag.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "имя бакета")
	flag.Parse()

	// Defaults
	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.PasswordHashCost == 0 {
		cfg.PasswordHashCost = 10
	}
	if cfg.SignedURLTTL <= 0 {
		cfg.SignedURLTTL = 60 * time.Second
	}
	if cfg.UploadMaxMB <= 0 {
		cfg.UploadMaxMB = 25
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "vault"
	}

	if cfg.SigningSecret == "" {
		return nil, ErrMissingSecret
	}

	return cfg, nil
}
