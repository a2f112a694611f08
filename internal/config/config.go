package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Lesson        LessonConfig        `mapstructure:"lesson"`
	SettingsCache SettingsCacheConfig `mapstructure:"settings_cache"`
	Client        ClientConfig        `mapstructure:"client"`
}

type ServerConfig struct {
	Port                   int             `mapstructure:"port" validate:"min=1,max=65535"`
	CORS                   CORSConfig      `mapstructure:"cors"`
	ShutdownTimeoutSeconds int             `mapstructure:"shutdown_timeout_seconds" validate:"min=0"`
	RateLimit              RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig limits API requests per user. A zero rate disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"min=0"`
	Burst             int     `mapstructure:"burst" validate:"min=0"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql postgres sqlite"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	Path            string            `mapstructure:"path"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	ConnectAttempts uint              `mapstructure:"connect_attempts"`
	ConnectDelayMs  int               `mapstructure:"connect_delay_milliseconds"`
}

// LessonConfig holds the defaults applied to users without stored settings.
type LessonConfig struct {
	AttemptsToRemember   int `mapstructure:"attempts_to_remember" validate:"min=1,max=50"`
	CardsPerLesson       int `mapstructure:"cards_per_lesson" validate:"min=0,max=50"`
	CardsToRepeat        int `mapstructure:"cards_to_repeat" validate:"min=0,max=50"`
	LessonLatestDays     int `mapstructure:"lesson_latest_days" validate:"min=0,max=50"`
	CardsRepeatPerLesson int `mapstructure:"cards_repeat_per_lesson" validate:"min=0,max=10"`
	LessonsPerDay        int `mapstructure:"lessons_per_day" validate:"min=0,max=50"`
	RandomWordsLimit     int `mapstructure:"random_words_limit" validate:"min=1"`
}

type SettingsCacheConfig struct {
	MaxItems   int `mapstructure:"max_items" validate:"min=1"`
	TTLSeconds int `mapstructure:"ttl_seconds" validate:"min=0"`
}

type ClientConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	UserID        int64  `mapstructure:"user_id"`
	// Token is sent as a bearer token for a fronting proxy.
	Token         string `mapstructure:"token"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/nativecards")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.rate_limit.requests_per_second", 10)
	v.SetDefault("server.rate_limit.burst", 20)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "nativecards")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.path", "nativecards.db")
	v.SetDefault("database.connect_attempts", 5)
	v.SetDefault("database.connect_delay_milliseconds", 500)
	v.SetDefault("lesson.attempts_to_remember", 10)
	v.SetDefault("lesson.cards_per_lesson", 10)
	v.SetDefault("lesson.cards_to_repeat", 5)
	v.SetDefault("lesson.lesson_latest_days", 21)
	v.SetDefault("lesson.cards_repeat_per_lesson", 3)
	v.SetDefault("lesson.lessons_per_day", 2)
	v.SetDefault("lesson.random_words_limit", 100)
	v.SetDefault("settings_cache.max_items", 1000)
	v.SetDefault("settings_cache.ttl_seconds", 1800)
	v.SetDefault("client.base_url", "http://localhost:8080")
	v.SetDefault("client.retry_attempts", 3)

	// Secrets are bound to environment variables only
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("client.token", "NATIVECARDS_API_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind NATIVECARDS_API_TOKEN environment variable: %w", err)
	}
	if err := v.BindEnv("client.user_id", "NATIVECARDS_USER_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind NATIVECARDS_USER_ID environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
