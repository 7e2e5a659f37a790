package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	App   AppConfig
	DB    DbConfig
	Redis RedisConfig
	JWT   JwtConfig
}

type AppConfig struct {
	App     string
	Version string
	Port    string
}

type DbConfig struct {
	DbHost string
	DbUser string
	DbPass string
	DbPort string
	DbName string
	DbSsl  string
	DbTz   string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
}

type JwtConfig struct {
	SecretKey string
}

var config *Config

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment")
	}

	config = &Config{
		App: AppConfig{
			App:     getEnv("APP_NAME", "emptrack"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Port:    getEnv("PORT", "5000"),
		},
		DB: DbConfig{
			DbHost: getEnv("DB_HOST", "localhost"),
			DbUser: getEnv("DB_USER", "postgres"),
			DbPass: getEnv("DB_PASSWORD", ""),
			DbPort: getEnv("DB_PORT", "5432"),
			DbName: getEnv("DB_NAME", "emptrack"),
			DbSsl:  getEnv("DB_SSL", "disable"),
			DbTz:   getEnv("DB_TZ", "UTC"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JwtConfig{
			SecretKey: getEnv("JWT_SECRET", "default_secret"),
		},
	}
}

func Get() *Config {
	if config == nil {
		Init()
	}
	return config
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
