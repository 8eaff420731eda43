package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultOTPDailyLimit = 10
	defaultBatchWorkers  = 4
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	RedisAddress  string `env:"REDIS_ADDRESS"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	JWTUserSecret string `env:"JWT_USER_SECRET"`
	DeviceAPIKey  string `env:"DEVICE_API_KEY"`

	// SMSBaseURL адрес SMS шлюза. Если пусто - коды пишутся в лог.
	SMSBaseURL string `env:"SMS_BASE_URL"`
	SMSToken   string `env:"SMS_TOKEN"`
	SMSFrom    string `env:"SMS_FROM"`

	OTPDailyLimit      int64    `env:"OTP_DAILY_LIMIT"`
	BatchWorkers       uint     `env:"BATCH_WORKERS"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

func LoadConfig() (*Config, error) {
	// .env необязателен.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	var corsOrigins string
	loadFlags(&flagsConfig, &corsOrigins)
	if corsOrigins != "" {
		flagsConfig.CORSAllowedOrigins = strings.Split(corsOrigins, ",")
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	if c.RedisAddress == "" {
		return errors.New("redis address is not set")
	}
	if c.JWTUserSecret == "" {
		return errors.New("jwt user secret is not set")
	}
	return nil
}

func loadFlags(flagConfig *Config, corsOrigins *string) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.RedisAddress, "r", "localhost:6379", "Redis address in format host:port")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT secret for user tokens")
	flag.StringVar(&flagConfig.DeviceAPIKey, "k", "", "API key of collection point devices")
	flag.StringVar(&flagConfig.SMSBaseURL, "s", "", "SMS gateway base URL")
	flag.Int64Var(&flagConfig.OTPDailyLimit, "otp-limit", defaultOTPDailyLimit, "OTP requests per phone/ip per day")
	flag.UintVar(&flagConfig.BatchWorkers, "w", defaultBatchWorkers, "Batch settlement workers")
	flag.StringVar(corsOrigins, "cors", "", "Comma separated CORS allowed origins")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:         defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:        defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:      defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		RedisAddress:       defaultIfBlank(envConfig.RedisAddress, flagsConfig.RedisAddress),
		RedisPassword:      envConfig.RedisPassword,
		RedisDB:            envConfig.RedisDB,
		JWTUserSecret:      defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		DeviceAPIKey:       defaultIfBlank(envConfig.DeviceAPIKey, flagsConfig.DeviceAPIKey),
		SMSBaseURL:         defaultIfBlank(envConfig.SMSBaseURL, flagsConfig.SMSBaseURL),
		SMSToken:           envConfig.SMSToken,
		SMSFrom:            envConfig.SMSFrom,
		OTPDailyLimit:      defaultIfZero(envConfig.OTPDailyLimit, flagsConfig.OTPDailyLimit),
		BatchWorkers:       defaultIfZero(envConfig.BatchWorkers, flagsConfig.BatchWorkers),
		CORSAllowedOrigins: defaultIfEmpty(envConfig.CORSAllowedOrigins, flagsConfig.CORSAllowedOrigins),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero[T int64 | uint](value, defaultValue T) T {
	if value == 0 {
		return defaultValue
	}
	return value
}

func defaultIfEmpty(value, defaultValue []string) []string {
	if len(value) == 0 {
		return defaultValue
	}
	return value
}
