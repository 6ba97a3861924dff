package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
	JWTSecret  string

	// Учетная запись супер-админа, создаваемая при старте
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "gantt_user"),
		DBPassword: getEnv("DB_PASSWORD", "gantt_pass"),
		DBName:     getEnv("DB_NAME", "gantt_db"),
		ServerPort: getEnv("SERVER_PORT", "8001"),
		JWTSecret:  getEnv("JWT_SECRET", "supersecretkey"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@admin.ru"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:     getEnv("ADMIN_NAME", "Супер Администратор"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
