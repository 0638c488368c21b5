package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv returns fallback when key is unset, blank, or fails to parse.
// Config is read before any logger exists, so bad values go to the std logger.
func lookupEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}

	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("Ignoring %s=%q: %v, using default %v", key, raw, err, fallback)
		return fallback
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(raw string) (string, error) {
		return raw, nil
	})
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

// GetEnvDuration accepts Go duration strings such as "250ms" or "10s".
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return lookupEnv(key, defaultValue, time.ParseDuration)
}
