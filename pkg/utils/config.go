package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Email    EmailConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
}

type EmailConfig struct {
	SendGridKey     string
	FromEmail       string
	FromName        string
	OperationsEmail string
	ContactPhone    string
	ContactEmail    string
}

type BookingConfig struct {
	DraftTTLHours int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "niramaya-wellness")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DRAFT_TTL_HOURS", 24)
	viper.SetDefault("EMAIL_FROM", "bookings@niramaya.com")
	viper.SetDefault("EMAIL_FROM_NAME", "Niramaya Wellness")
	viper.SetDefault("CONTACT_PHONE", "+91 98765 43210")
	viper.SetDefault("CONTACT_EMAIL", "hello@niramaya.com")

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine, env vars and defaults still apply
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Username: viper.GetString("REDIS_USERNAME"),
			Password: viper.GetString("REDIS_PASSWORD"),
		},
		Email: EmailConfig{
			SendGridKey:     viper.GetString("SENDGRID_API_KEY"),
			FromEmail:       viper.GetString("EMAIL_FROM"),
			FromName:        viper.GetString("EMAIL_FROM_NAME"),
			OperationsEmail: viper.GetString("OPERATIONS_EMAIL"),
			ContactPhone:    viper.GetString("CONTACT_PHONE"),
			ContactEmail:    viper.GetString("CONTACT_EMAIL"),
		},
		Booking: BookingConfig{
			DraftTTLHours: viper.GetInt("DRAFT_TTL_HOURS"),
		},
	}

	return config, nil
}
