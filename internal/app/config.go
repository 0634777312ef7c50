package app

import "flag"

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Size       int
	IntervalMS int
	Scale      int
	Seed       int64
	Randomize  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 64, IntervalMS: 1000, Scale: 8, Seed: 42, Randomize: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "tick interval in milliseconds")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized boards")
	fs.BoolVar(&c.Randomize, "randomize", c.Randomize, "randomize the board at startup")
}
