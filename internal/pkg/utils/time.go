package utils

import (
	"doccare-service/internal/pkg/constvars"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock splits an "H:MM" or "HH:MM" string into hour and minute.
func ParseClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock value %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock value %q out of range", value)
	}
	return hour, minute, nil
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayoutYYYYMMDD, value, loc)
}

// ParseDateTime accepts RFC3339 instants and bare YYYY-MM-DD dates (UTC midnight).
func ParseDateTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.ParseInLocation(constvars.DateLayoutYYYYMMDD, value, time.UTC)
}
