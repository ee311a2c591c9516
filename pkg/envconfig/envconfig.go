package envconfig

import (
	"os"
	"strconv"
	"strings"

	"mesa-pos/pkg/logger"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads key=value pairs from path into the environment.
// Variables already set in the environment win.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// GetEnv returns the value of key, or def when it is unset or empty.
func GetEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

// GetBool parses key as a boolean, falling back to def.
func GetBool(key string, def bool) bool {
	val, err := strconv.ParseBool(GetEnv(key, ""))
	if err != nil {
		return def
	}
	return val
}

// GetList splits a comma separated value, dropping blanks.
func GetList(key string, def []string) []string {
	raw := GetEnv(key, "")
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func GetLogLevel() logger.LogLevel {
	switch strings.ToLower(GetEnv("LOG_LEVEL", "info")) {
	case "debug":
		return logger.LevelDebug
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// LoadLoggerConfig reads the LOG_* variables.
func LoadLoggerConfig() logger.Config {
	return logger.Config{
		Level:        GetLogLevel(),
		Format:       GetEnv("LOG_FORMAT", "json"),
		Output:       GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: GetBool("LOG_ENABLE_CALLER", true),
		Environment:  GetEnv("ENVIRONMENT", "development"),
	}
}
