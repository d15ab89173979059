package tinsel

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable parameters of a show. Durations are in seconds.
type Config struct {
	Particles int `toml:"particles"`
	Ornaments int `toml:"ornaments"`

	// Countdown is the label sequence spelled before the announcement.
	Countdown []string `toml:"countdown"`
	// Announce is the label spelled after the countdown.
	Announce string `toml:"announce"`

	CountdownInterval float64 `toml:"countdown_interval"`
	AnnounceHold      float64 `toml:"announce_hold"`
	SettleDelay       float64 `toml:"settle_delay"`

	// Seed fixes the random source. Zero seeds from the clock.
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns the stock show parameters.
func DefaultConfig() Config {
	return Config{
		Particles:         6000,
		Ornaments:         60,
		Countdown:         []string{"5", "4", "3", "2", "1"},
		Announce:          "2026",
		CountdownInterval: 1.2,
		AnnounceHold:      3.5,
		SettleDelay:       3.0,
	}
}

// ParseConfig decodes TOML data over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Particles <= 0:
		return fmt.Errorf("config: particles must be positive, got %d", c.Particles)
	case c.Ornaments < 0:
		return fmt.Errorf("config: ornaments must not be negative, got %d", c.Ornaments)
	case c.CountdownInterval <= 0:
		return fmt.Errorf("config: countdown_interval must be positive, got %v", c.CountdownInterval)
	case c.AnnounceHold < 0:
		return fmt.Errorf("config: announce_hold must not be negative, got %v", c.AnnounceHold)
	case c.SettleDelay < 0:
		return fmt.Errorf("config: settle_delay must not be negative, got %v", c.SettleDelay)
	}
	return nil
}
