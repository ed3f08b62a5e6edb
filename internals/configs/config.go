package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret            string
	IdentityWebhookToken string
	ExecutorBaseURL      string
	ExecutorAPIKey       string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, falling back to system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	IdentityWebhookToken = GetEnv("IDENTITY_WEBHOOK_TOKEN")
	ExecutorBaseURL = GetEnv("EXECUTOR_BASE_URL")
	ExecutorAPIKey = GetEnv("EXECUTOR_API_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if IdentityWebhookToken == "" {
		log.Println("❌ IDENTITY_WEBHOOK_TOKEN is not set, provisioning webhook will reject all events")
	}
	if ExecutorBaseURL == "" {
		log.Println("⚠️ EXECUTOR_BASE_URL is not set, code execution endpoint disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
