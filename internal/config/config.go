package config

import (
	"os"
	"strconv"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Port string

	// Store selects where packed output is persisted: memory, sqlite or postgres.
	Store       string
	SQLitePath  string
	PostgresDSN string

	// SessionCache bounds the number of live sessions; the least recently used is evicted.
	SessionCache int

	MQTTBroker string // empty disables event publishing
	MQTTTopic  string

	OutDir string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:         envOr("PORT", "8080"),
		Store:        envOr("HUFF_STORE", StoreMemory),
		SQLitePath:   envOr("HUFF_SQLITE_PATH", "./huffman.db"),
		PostgresDSN:  os.Getenv("HUFF_PG_DSN"),
		SessionCache: envInt("HUFF_SESSION_CACHE", 128),
		MQTTBroker:   os.Getenv("HUFF_MQTT_BROKER"),
		MQTTTopic:    envOr("HUFF_MQTT_TOPIC", "huffman/events"),
		OutDir:       envOr("HUFF_OUT_DIR", "."),
	}
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
