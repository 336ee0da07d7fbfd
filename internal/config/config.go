// Package config loads runtime settings from the environment, after
// reading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/delve/internal/logging"
	"github.com/samdwyer/delve/internal/procgen"
)

// ErrInvalid is returned when a variable is set but cannot be parsed.
var ErrInvalid = errors.New("invalid configuration")

const (
	DefaultFOVRadius = 8
	DefaultMaxDepth  = 10
)

// Config holds all configuration for the application
type Config struct {
	// Seed is the master seed. HasSeed is false when DELVE_SEED was not
	// set and the caller should pick one.
	Seed    int64
	HasSeed bool

	Generation procgen.Config
	FOVRadius  int
	MaxDepth   int // Number of floors; the deepest level is MaxDepth-1

	Log       logging.Config
	Telemetry bool
}

// Load reads the given .env files (".env" when none are named), then
// builds the config from environment variables. Missing .env files are
// not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the current environment only.
func FromEnv() (*Config, error) {
	gen := procgen.DefaultConfig()
	cfg := &Config{
		Log: logging.Config{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	var err error
	if raw := os.Getenv("DELVE_SEED"); raw != "" {
		cfg.Seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: DELVE_SEED=%q", ErrInvalid, raw)
		}
		cfg.HasSeed = true
	}

	ints := []struct {
		key  string
		dst  *int
		dflt int
	}{
		{"DELVE_WIDTH", &gen.Width, gen.Width},
		{"DELVE_HEIGHT", &gen.Height, gen.Height},
		{"DELVE_MAX_ROOMS", &gen.MaxRooms, gen.MaxRooms},
		{"DELVE_ROOM_MIN", &gen.RoomMinSize, gen.RoomMinSize},
		{"DELVE_ROOM_MAX", &gen.RoomMaxSize, gen.RoomMaxSize},
		{"DELVE_FOV_RADIUS", &cfg.FOVRadius, DefaultFOVRadius},
		{"DELVE_MAX_DEPTH", &cfg.MaxDepth, DefaultMaxDepth},
	}
	for _, v := range ints {
		if *v.dst, err = getEnvAsIntOrDefault(v.key, v.dflt); err != nil {
			return nil, err
		}
	}

	cfg.Telemetry, err = getEnvAsBoolOrDefault("DELVE_TELEMETRY", false)
	if err != nil {
		return nil, err
	}

	if err := gen.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxDepth < 1 {
		return nil, fmt.Errorf("%w: DELVE_MAX_DEPTH must be at least 1", ErrInvalid)
	}
	cfg.Generation = gen

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, key, value)
	}
	return intValue, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalid, key, value)
	}
	return b, nil
}
