package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	logrus "github.com/sirupsen/logrus"
)

// Config holds the process settings. It is built once in main and passed down.
type Config struct {
	DataDir string
	Log     LogConfig
}

// LogConfig drives the rotating log file.
type LogConfig struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load reads settings from the environment, falling back to the given
// .env files (".env" when none are named) and then to defaults. Real
// environment variables win over file values, as with godotenv.Load.
func Load(files ...string) Config {
	fileEnv, err := godotenv.Read(files...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.Info("No .env file found – relying on env vars")
		} else {
			logrus.WithError(err).Warn("Ignoring unreadable .env file")
		}
		fileEnv = map[string]string{}
	}
	env := lookup{file: fileEnv}

	return Config{
		DataDir: env.get("UTMS_DATA_DIR", "utms_data"),
		Log: LogConfig{
			File:       env.get("UTMS_LOG_FILE", "./logs/utms.log"),
			Level:      env.get("UTMS_LOG_LEVEL", "info"),
			MaxSizeMB:  env.getInt("UTMS_LOG_MAX_SIZE_MB", 10),
			MaxBackups: env.getInt("UTMS_LOG_MAX_BACKUPS", 7),
			MaxAgeDays: env.getInt("UTMS_LOG_MAX_AGE_DAYS", 7),
			Compress:   env.getBool("UTMS_LOG_COMPRESS", true),
		},
	}
}

type lookup struct {
	file map[string]string
}

// get reads an environment variable, then the .env value, or returns the default
func (l lookup) get(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	if v, exists := l.file[key]; exists {
		return v
	}
	return defaultValue
}

func (l lookup) getInt(key string, defaultValue int) int {
	raw := strings.TrimSpace(l.get(key, ""))
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": raw}).Warn("Invalid integer setting, using default")
		return defaultValue
	}
	return n
}

func (l lookup) getBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(l.get(key, ""))
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": raw}).Warn("Invalid boolean setting, using default")
		return defaultValue
	}
	return b
}
