// Package config loads easy-srtm settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	TilesDir    string
	Addr        string
	LogLevel    string
	LogConsole  bool
	CacheSize   int
	URLTemplate string
}

// FromEnv reads configuration from the environment, after loading a
// .env file from the working directory if one is present.
// HGT_TILES_FOLDER is the key the original tooling around these tiles
// used for the data directory; it is kept for compatibility.
func FromEnv() Config {
	_ = godotenv.Load()
	return Config{
		TilesDir:    getenv("HGT_TILES_FOLDER", "."),
		Addr:        getenv("ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogConsole:  getbool("LOG_CONSOLE", false),
		CacheSize:   getint("TILE_CACHE_SIZE", 128),
		URLTemplate: getenv("HGT_URL_TEMPLATE", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "t", "true", "y", "yes":
			return true
		case "0", "f", "false", "n", "no":
			return false
		}
	}
	return def
}
