package app

import (
	"flag"
	"strconv"
	"time"

	"life-tiles/pkg/session"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Interval int
	Scale    int
	Store    string
	State    string
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Interval: int(session.DefaultInterval / time.Millisecond),
		Scale:    24,
		Store:    "file",
		State:    "life-tiles.json",
		Seed:     0,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Interval, "interval", c.Interval, "milliseconds between generations")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.StringVar(&c.Store, "store", c.Store, "history backend: memory, file or sqlite")
	fs.StringVar(&c.State, "state", c.State, "history file or database path")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills (0 uses the clock)")
}

// FromMap overrides fields from flag-style key/value pairs.
func (c *Config) FromMap(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["store"]; ok && v != "" {
		c.Store = v
	}
	if v, ok := cfg["state"]; ok && v != "" {
		c.State = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
}

// IntervalDuration returns Interval as a duration.
func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Millisecond
}

// SeedFunc returns the seed source for random fills: the configured seed,
// advanced on every call, or the clock when Seed is zero.
func (c *Config) SeedFunc() func() int64 {
	if c.Seed == 0 {
		return func() int64 { return time.Now().UnixNano() }
	}
	next := c.Seed
	return func() int64 {
		seed := next
		next++
		return seed
	}
}
