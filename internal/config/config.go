package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	AppEnv            string
	StorageBackend    string
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		StorageBackend:    os.Getenv("STORAGE_BACKEND"),
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		Currency:          os.Getenv("CURRENCY"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "5000"
	}
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = "memory"
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}

	if cfg.StorageBackend == "postgres" && cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
