package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the database and server settings resolved at startup.
type Config struct {
	DBHost     string `yaml:"db_host"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	Port       string `yaml:"port"`
}

// Load resolves configuration in priority order: an optional YAML config
// file (path from CONFIG_FILE, default config.yaml) overrides environment
// variables, which override the hardcoded defaults. A .env file, if present,
// is folded into the environment first. Load is called per connection
// attempt and never caches.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "car"),
		DBPassword: getenv("DB_PASSWORD", "test"),
		DBName:     getenv("DB_NAME", "car_db"),
		Port:       getenv("PORT", "8080"),
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		log.Printf("[config] ignoring malformed config file %s: %v", path, err)
		return cfg
	}
	overlay(&cfg, file)
	return cfg
}

// overlay copies every non-empty field of src onto dst.
func overlay(dst *Config, src Config) {
	if src.DBHost != "" {
		dst.DBHost = src.DBHost
	}
	if src.DBUser != "" {
		dst.DBUser = src.DBUser
	}
	if src.DBPassword != "" {
		dst.DBPassword = src.DBPassword
	}
	if src.DBName != "" {
		dst.DBName = src.DBName
	}
	if src.Port != "" {
		dst.Port = src.Port
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
