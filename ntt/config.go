package ntt

import (
	"fmt"
	"runtime"
)

// Config holds the parallelism and blocking parameters of an Engine.
type Config struct {
	Workers         int // goroutines running leaf sub-transforms
	LeafSize        int // in-place block size, a power of 8
	ParallelMinSize int // sub-transforms of at least this size fan out
}

// DefaultConfig returns one worker per schedulable CPU, the default leaf
// size, and parallel fan-out from eight leaves up.
func DefaultConfig() *Config {
	return &Config{
		Workers:         runtime.GOMAXPROCS(0),
		LeafSize:        LeafSize,
		ParallelMinSize: 8 * LeafSize,
	}
}

// Validate checks config constraints and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("%w: Workers must be > 0", ErrInvalidConfig)
	}
	if c.LeafSize < 8 || !isPowerOf8(c.LeafSize) {
		return fmt.Errorf("%w: LeafSize must be a power of 8 >= 8, got %d", ErrInvalidConfig, c.LeafSize)
	}
	if c.ParallelMinSize <= c.LeafSize {
		return fmt.Errorf("%w: ParallelMinSize %d must exceed LeafSize %d",
			ErrInvalidConfig, c.ParallelMinSize, c.LeafSize)
	}
	return nil
}
