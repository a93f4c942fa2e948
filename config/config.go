package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	CSVInputPath  string
	MaxFileSizeMB int
	SearchQuery   string
	TableRowLimit int
	Debug         bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		CSVInputPath:  getEnv("CSV_INPUT_PATH", "./data/deals.csv"),
		MaxFileSizeMB: getEnvInt("MAX_FILE_SIZE_MB", 5),
		SearchQuery:   getEnv("SEARCH_QUERY", ""),
		TableRowLimit: getEnvInt("TABLE_ROW_LIMIT", 20),
		Debug:         getEnvBool("DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
