package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ahinestrog/bookstore-console/Backend/src/catalog"
)

type Config struct {
	CatalogDSN     string
	SeedCatalog    bool
	CacheSize      int
	LogLevel       string
	RabbitURL      string
	RabbitExchange string
}

// LoadConfig reads the environment, after a .env file in the working
// directory if there is one.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		CatalogDSN:     getenv("BOOKSTORE_CATALOG_DSN", catalog.MemoryDSN),
		SeedCatalog:    getenv("BOOKSTORE_SEED_CATALOG", "true") == "true",
		CacheSize:      getenvInt("BOOKSTORE_CACHE_SIZE", catalog.DefaultCacheSize),
		LogLevel:       getenv("BOOKSTORE_LOG_LEVEL", "warn"),
		RabbitURL:      getenv("RABBIT_URL", ""),
		RabbitExchange: getenv("RABBIT_EXCHANGE", "bookstore.events"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	n, err := strconv.Atoi(getenv(k, ""))
	if err != nil {
		return def
	}
	return n
}
