package utils

import (
	"strconv"
	"strings"
)

// ToInt reads an integer from a query value, env value or decoded JSON number.
// Anything unparseable is 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		return atoi(v)
	case []byte:
		return atoi(string(v))
	}
	return 0
}

// ToBool treats true, 1, and the strings "1", "true", "yes", "on" as true.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64:
		return ToInt(v) == 1
	case string:
		return truthy(v)
	case []byte:
		return truthy(string(v))
	}
	return false
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
