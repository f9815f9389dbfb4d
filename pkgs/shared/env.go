package shared

import (
	"os"
	"strconv"
	"strings"
)

func GetEnvString(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		Logger.Warn("Environment variable not set, using fallback.", "key", key, "fallback", fallback)
		return fallback
	}
	return value
}

func GetEnvInt(key string, fallback int) int {
	valueStr := os.Getenv(key)
	if len(valueStr) == 0 {
		Logger.Warn("Environment variable not set, using fallback.", "key", key, "fallback", fallback)
		return fallback
	}

	intValue, err := strconv.Atoi(valueStr)
	if err != nil {
		Logger.Warn("Invalid integer value for environment variable, using fallback.", "key", key, "value", valueStr, "fallback", fallback, "error", err)
		return fallback
	}
	return intValue
}

func GetEnvBool(key string, fallback bool) bool {
	valueStr := os.Getenv(key)
	if len(valueStr) == 0 {
		Logger.Warn("Environment variable not set, using fallback.", "key", key, "fallback", fallback)
		return fallback
	}

	boolValue, err := strconv.ParseBool(valueStr)
	if err != nil {
		Logger.Warn("Invalid boolean value for environment variable, using fallback.", "key", key, "value", valueStr, "fallback", fallback, "error", err)
		return fallback
	}
	return boolValue
}

// GetEnvList reads a comma-separated variable, dropping blank items.
func GetEnvList(key string, fallback []string) []string {
	valueStr := os.Getenv(key)
	if len(valueStr) == 0 {
		Logger.Warn("Environment variable not set, using fallback.", "key", key, "fallback", strings.Join(fallback, ","))
		return fallback
	}

	var items []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
