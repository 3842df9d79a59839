package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/yeremiapane/pidey-coffee/utils"
)

// Config holds all application configurations.
type Config struct {
	Port          string        `mapstructure:"port"`
	GinMode       string        `mapstructure:"gin_mode"`
	LogLevel      string        `mapstructure:"log_level"`
	DBDriver      string        `mapstructure:"db_driver"`
	DBDSN         string        `mapstructure:"db_dsn"`
	AdminPassword string        `mapstructure:"admin_password"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	ShopName      string        `mapstructure:"shop_name"`
	WhatsAppNo    string        `mapstructure:"whatsapp_number"`
	CORSOrigins   []string      `mapstructure:"cors_origins"`
	RateLimit     float64       `mapstructure:"rate_limit"`
	// DashboardInterval controls how often the admin live feed gets a fresh summary. Zero disables it.
	DashboardInterval time.Duration `mapstructure:"dashboard_interval"`
	Kafka             KafkaConfig   `mapstructure:",squash"`
}

// KafkaConfig controls the optional order relay.
type KafkaConfig struct {
	Enabled bool     `mapstructure:"kafka_enabled"`
	Brokers []string `mapstructure:"kafka_brokers"`
	Topic   string   `mapstructure:"kafka_topic"`
}

// Default returns the configuration used when nothing is set. Tests start from here.
func Default() *Config {
	return &Config{
		Port:              "8080",
		GinMode:           "debug",
		LogLevel:          "info",
		DBDriver:          "sqlite",
		DBDSN:             "coffee.db",
		AdminPassword:     "admin123",
		JWTSecret:         "PideyCoffeeSecret",
		SessionTTL:        24 * time.Hour,
		ShopName:          "Pidey Coffee",
		WhatsAppNo:        "6285334679379",
		CORSOrigins:       []string{"*"},
		RateLimit:         20,
		DashboardInterval: 10 * time.Second,
		Kafka: KafkaConfig{
			Brokers: []string{"127.0.0.1:9092"},
			Topic:   "coffee-orders",
		},
	}
}

// LoadConfig reads .env, an optional config/config.yaml and the environment, in that order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	v := viper.New()
	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault("port", def.Port)
	v.SetDefault("gin_mode", def.GinMode)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("db_driver", def.DBDriver)
	v.SetDefault("db_dsn", def.DBDSN)
	v.SetDefault("admin_password", def.AdminPassword)
	v.SetDefault("jwt_secret", def.JWTSecret)
	v.SetDefault("session_ttl", def.SessionTTL)
	v.SetDefault("shop_name", def.ShopName)
	v.SetDefault("whatsapp_number", def.WhatsAppNo)
	v.SetDefault("cors_origins", def.CORSOrigins)
	v.SetDefault("rate_limit", def.RateLimit)
	v.SetDefault("dashboard_interval", def.DashboardInterval)
	v.SetDefault("kafka_enabled", def.Kafka.Enabled)
	v.SetDefault("kafka_brokers", def.Kafka.Brokers)
	v.SetDefault("kafka_topic", def.Kafka.Topic)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// env list datang sebagai "a,b" bukan slice
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == def.JWTSecret {
		utils.InfoLogger.Println("Warning: JWT_SECRET not set, using default secret")
	}
	return &cfg, nil
}

// Validate checks the values that would make the server unusable.
func (c *Config) Validate() error {
	if c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD must not be empty")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return errors.New("KAFKA_BROKERS and KAFKA_TOPIC are required when KAFKA_ENABLED is true")
	}
	return nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
