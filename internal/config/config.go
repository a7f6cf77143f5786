// Package config loads runtime settings from the environment, with an
// optional .env file for local overrides.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir           string
	Backend           string // "file" or "sqlite"
	DatabaseDSN       string
	Locale            string // "es" or "en"
	LogFile           string
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	AutoStartBreak    bool
	SoundEnabled      bool
}

func Load() Config {
	_ = godotenv.Load()

	dataDir := getEnv("TASKAPP_DATA_DIR", defaultDataDir())

	cfg := Config{
		DataDir:           dataDir,
		Backend:           getEnv("TASKAPP_BACKEND", "file"),
		DatabaseDSN:       getEnv("TASKAPP_DATABASE_DSN", filepath.Join(dataDir, "taskapp.db")),
		Locale:            getEnv("TASKAPP_LOCALE", "es"),
		LogFile:           getEnv("TASKAPP_LOG_FILE", filepath.Join(dataDir, "taskapp.log")),
		WorkMinutes:       getEnvAsInt("TASKAPP_WORK_MINUTES", 25),
		ShortBreakMinutes: getEnvAsInt("TASKAPP_SHORT_BREAK_MINUTES", 5),
		LongBreakMinutes:  getEnvAsInt("TASKAPP_LONG_BREAK_MINUTES", 15),
		AutoStartBreak:    getEnvAsBool("TASKAPP_AUTO_START_BREAK", false),
		SoundEnabled:      getEnvAsBool("TASKAPP_SOUND_ENABLED", true),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.Backend != "file" && cfg.Backend != "sqlite" {
		log.Fatal("TASKAPP_BACKEND must be \"file\" or \"sqlite\"")
	}
	if cfg.DataDir == "" {
		log.Fatal("TASKAPP_DATA_DIR must not be empty")
	}
	if cfg.WorkMinutes <= 0 {
		log.Fatal("TASKAPP_WORK_MINUTES must be greater than 0")
	}
	if cfg.ShortBreakMinutes <= 0 {
		log.Fatal("TASKAPP_SHORT_BREAK_MINUTES must be greater than 0")
	}
	if cfg.LongBreakMinutes <= 0 {
		log.Fatal("TASKAPP_LONG_BREAK_MINUTES must be greater than 0")
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskapp"
	}
	return filepath.Join(home, ".taskapp")
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
