package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Log     LogConfig
	Import  ImportConfig
}

type AppConfig struct {
	Port           string
	Env            string
	Timezone       string
	MigrateOnStart bool
}

type DBConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN returns the connection URL, building one from the individual
// parts when DATABASE_URL is not set.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type LogConfig struct {
	Level string
	File  string
}

type ImportConfig struct {
	MaxBytes int64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "medinote")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("SESSION_COOKIE_NAME", "medinote_session")
	viper.SetDefault("IMPORT_MAX_BYTES", 5<<20)
	viper.SetDefault("LOG_LEVEL", "info")

	// .env is optional; the environment alone is enough.
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 12 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			Timezone:       viper.GetString("APP_TIMEZONE"),
			MigrateOnStart: viper.GetBool("MIGRATE_ON_START"),
		},
		DB: DBConfig{
			URL:      viper.GetString("DATABASE_URL"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret:       viper.GetString("SESSION_SECRET"),
			TTL:          sessionTTL,
			CookieName:   viper.GetString("SESSION_COOKIE_NAME"),
			CookieSecure: viper.GetBool("SESSION_COOKIE_SECURE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
			File:  viper.GetString("LOG_FILE"),
		},
		Import: ImportConfig{
			MaxBytes: viper.GetInt64("IMPORT_MAX_BYTES"),
		},
	}

	// Secure cookies default on in production unless set explicitly.
	if !viper.IsSet("SESSION_COOKIE_SECURE") {
		config.Session.CookieSecure = config.App.IsProduction()
	}

	if config.Session.Secret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	return config, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsProduction reports whether the app runs in production mode.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}
