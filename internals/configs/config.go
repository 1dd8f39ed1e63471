package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	DatabaseURL string
	AppPort     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded!")
	}

	DatabaseURL = GetEnv("DATABASE_URL")
	AppPort = GetEnv("PORT", "3000")

	if DatabaseURL == "" && os.Getenv("DB_HOST") == "" {
		log.Println("❌ Neither DATABASE_URL nor DB_HOST is set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
