package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/the-web800/Reversi-AI/internal/reversi"
)

// Config holds the settings of a session.
type Config struct {
	UI       string
	Color    string
	Seed     int64
	Strategy reversi.Strategy
	Scoring  reversi.ScoringRule
	Verbose  bool
}

// LoadConfig reads .env (if present), then the environment, then the
// command line. Flags win over the environment.
func LoadConfig(args []string, stderr io.Writer) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("reversi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	ui := fs.String("ui", GetEnv("REVERSI_UI", "console"), "front-end: console or tui")
	color := fs.String("color", GetEnv("REVERSI_COLOR", ""), "your color: b, w or r (asked when empty)")
	seed := fs.Int64("seed", GetEnvAsInt64("REVERSI_SEED", 0), "seed for the random color, 0 uses the clock")
	strategy := fs.String("strategy", GetEnv("REVERSI_STRATEGY", "classic"), "computer player: classic or greedy")
	scoring := fs.String("scoring", GetEnv("REVERSI_SCORING", "fewer"), "empty cells at the end go to: fewer, winner or discs")
	verbose := fs.Bool("v", GetEnvAsBool("REVERSI_VERBOSE", false), "log diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		UI:      strings.ToLower(*ui),
		Color:   strings.ToLower(*color),
		Seed:    *seed,
		Verbose: *verbose,
	}

	if cfg.UI != "console" && cfg.UI != "tui" {
		return nil, fmt.Errorf("unknown ui %q", *ui)
	}

	if cfg.Color != "" && !strings.ContainsAny(cfg.Color[:1], "bwr") {
		return nil, fmt.Errorf("unknown color %q", *color)
	}

	var err error
	if cfg.Strategy, err = reversi.ParseStrategy(*strategy); err != nil {
		return nil, err
	}
	if cfg.Scoring, err = reversi.ParseScoringRule(*scoring); err != nil {
		return nil, err
	}

	return cfg, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
