package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/romidental/reception-api/pkg/errors"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Clinic    ClinicConfig    `mapstructure:"clinic"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Admin     AdminConfig     `mapstructure:"admin"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ClinicConfig carries the clinic's business settings. It is passed explicitly
// into validators, services and handlers; nothing reads it from package state.
type ClinicConfig struct {
	Name            string            `mapstructure:"name"`
	Location        string            `mapstructure:"location"`
	AgentName       string            `mapstructure:"agent_name"`
	Services        []string          `mapstructure:"services"`
	PaymentMethods  []string          `mapstructure:"payment_methods"`
	WorkingHours    map[string]string `mapstructure:"working_hours"`
	ConsultationFee float64           `mapstructure:"consultation_fee"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("RECEPTION")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, apperrors.Configuration("failed to read config file", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, apperrors.Configuration("failed to unmarshal config", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "10s")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "clinic")
	viper.SetDefault("database.sslmode", "disable")

	viper.SetDefault("clinic.name", "Romi Dental Clinic")
	viper.SetDefault("clinic.location", "Albania")
	viper.SetDefault("clinic.agent_name", "Elo")
	viper.SetDefault("clinic.consultation_fee", 50.0)
	viper.SetDefault("clinic.services", []string{
		"regular check-ups and cleanings",
		"cosmetic dentistry and whitening",
		"emergency dental care",
		"children's dentistry",
		"dental implants and prosthetics",
		"root canal treatment",
		"dental crowns",
		"teeth whitening",
		"dental fillings",
		"orthodontics",
	})
	viper.SetDefault("clinic.payment_methods", []string{
		"Cash (Euro)",
		"Credit Cards",
		"Debit Cards",
		"Bank Transfers",
	})
	viper.SetDefault("clinic.working_hours", map[string]string{
		"monday":    "9 AM - 6 PM",
		"tuesday":   "9 AM - 6 PM",
		"wednesday": "9 AM - 6 PM",
		"thursday":  "9 AM - 6 PM",
		"friday":    "9 AM - 6 PM",
		"saturday":  "9 AM - 2 PM",
		"sunday":    "Closed",
	})

	viper.SetDefault("jwt.expiry_hours", 24)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 10.0)
	viper.SetDefault("rate_limit.burst", 20)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.Configuration(fmt.Sprintf("invalid server port %d", c.Server.Port), nil)
	}
	if c.Clinic.ConsultationFee < 0 {
		return apperrors.Configuration("consultation fee cannot be negative", nil)
	}
	if len(c.Clinic.WorkingHours) == 0 {
		return apperrors.Configuration("working hours must be configured", nil)
	}
	return nil
}
