package utils

import (
	"log"
	"os"
	"strconv"
)

// lookupEnv returns fallback when the key is unset or does not parse.
func lookupEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value, err := parse(raw)
	if err != nil {
		log.Printf("Invalid value for %s (%q), using default %v", key, raw, fallback)
		return fallback
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(raw string) (string, error) { return raw, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}
