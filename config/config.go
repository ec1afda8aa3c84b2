package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Static StaticConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	// URL is a PostgreSQL DSN. When empty the server falls back to a
	// local sqlite file for development.
	URL        string
	SQLitePath string
}

type StaticConfig struct {
	// Dir is the root of a prebuilt frontend bundle. Empty disables
	// static hosting.
	Dir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SQLITE_PATH", "practice.db")

	// A .env file is optional; real environment variables always apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			URL:        viper.GetString("DATABASE_URL"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
		Static: StaticConfig{
			Dir: viper.GetString("STATIC_DIR"),
		},
	}

	return config, nil
}
