// FILE: env.go
// Package config — environment-variable helpers shared by every package's
// Config.FromEnv constructor.
//
// Directly grounded on _examples/chidi150c-coinbase/env.go: the same
// getEnv/getEnvFloat/getEnvBool/getEnvInt shape (read the process
// environment, fall back to a caller-supplied default), just exported so
// every quantcore package can build its own Config struct from env without
// a circular import on a single monolithic config type.
package config

import (
	"os"
	"strconv"
	"strings"
)

// GetEnv returns the trimmed value of key, or def if unset/blank.
func GetEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// GetEnvFloat parses key as a float64, or returns def if unset/unparsable.
func GetEnvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// GetEnvInt parses key as an int, or returns def if unset/unparsable.
func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetEnvBool parses key as a bool with strconv.ParseBool (1, t, T, TRUE,
// true, True and their false counterparts), or returns def if
// unset/unparsable.
func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
