package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime settings of the application. Everything has a
// compiled default so the game runs without any configuration file.
type Config struct {
	// AINames is the pool of display names for AI opponents.
	AINames []string `json:"ai_names"`
	// AIDelayMS is the AI "thinking" delay before a decision is applied.
	AIDelayMS int `json:"ai_delay_ms"`
	// StatsFile is the path of the persisted win/loss tally.
	StatsFile string `json:"stats_file"`
	// HandSize is how many cards each player is dealt.
	HandSize int `json:"hand_size"`
	// MinPlayers and MaxPlayers bound the table size (human included).
	MinPlayers int `json:"min_players"`
	MaxPlayers int `json:"max_players"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AIDelayMS:  1500,
		StatsFile:  "crazy8_stats.json",
		HandSize:   8,
		MinPlayers: 2,
		MaxPlayers: 4,
	}
}

// Load reads the configuration file at path, falling back to defaults when
// the file is absent, then applies CRAZY8_* environment overrides. A file
// that exists but cannot be parsed is an error; a missing file is not.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	cfg.applyEnv()
	cfg.clamp()
	return cfg, nil
}

// applyEnv layers environment overrides (loaded from .env by main via
// godotenv) on top of the file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("CRAZY8_STATS_FILE"); v != "" {
		c.StatsFile = v
	}
	if v := os.Getenv("CRAZY8_AI_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			c.AIDelayMS = ms
		}
	}
}

// clamp restores any setting a config file zeroed or broke.
func (c *Config) clamp() {
	if c.HandSize <= 0 {
		c.HandSize = 8
	}
	if c.MinPlayers < 2 {
		c.MinPlayers = 2
	}
	if c.MaxPlayers < c.MinPlayers {
		c.MaxPlayers = c.MinPlayers
	}
	if c.AIDelayMS < 0 {
		c.AIDelayMS = 0
	}
	if c.StatsFile == "" {
		c.StatsFile = "crazy8_stats.json"
	}
}

// AIDelay returns the thinking delay as a duration.
func (c *Config) AIDelay() time.Duration {
	return time.Duration(c.AIDelayMS) * time.Millisecond
}
