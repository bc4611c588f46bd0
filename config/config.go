package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Clinic ClinicConfig
}

type AppConfig struct {
	Port        string
	Env         string
	TimeZone    string
	CORSOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// ClinicConfig holds the default working-hours policy. Doctor profiles
// without explicit hours inherit these values.
type ClinicConfig struct {
	Opening     string // HH:MM
	Closing     string // HH:MM
	LunchStart  string // HH:MM
	LunchEnd    string // HH:MM
	SlotMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:        viper.GetString("APP_PORT"),
			Env:         viper.GetString("APP_ENV"),
			TimeZone:    viper.GetString("APP_TIMEZONE"),
			CORSOrigins: splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
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
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Clinic: ClinicConfig{
			Opening:     viper.GetString("CLINIC_OPENING"),
			Closing:     viper.GetString("CLINIC_CLOSING"),
			LunchStart:  viper.GetString("CLINIC_LUNCH_START"),
			LunchEnd:    viper.GetString("CLINIC_LUNCH_END"),
			SlotMinutes: viper.GetInt("CLINIC_SLOT_MINUTES"),
		},
	}

	if config.App.TimeZone == "" {
		config.App.TimeZone = "UTC"
	}
	applyClinicDefaults(&config.Clinic)

	return config, nil
}

func splitOrigins(s string) []string {
	if s == "" {
		return []string{"*"}
	}
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func applyClinicDefaults(c *ClinicConfig) {
	if c.Opening == "" {
		c.Opening = "09:00"
	}
	if c.Closing == "" {
		c.Closing = "18:00"
	}
	if c.LunchStart == "" {
		c.LunchStart = "13:00"
	}
	if c.LunchEnd == "" {
		c.LunchEnd = "14:00"
	}
	if c.SlotMinutes <= 0 {
		c.SlotMinutes = 30
	}
}
