package skyscraper

import (
	"fmt"
	"runtime"
)

// Config holds the batching and proof-of-work parameters of a Hasher.
type Config struct {
	BatchWidth int // lanes per permutation call: 1 (scalar only), 3 or 4
	Workers    int // proof-of-work solver goroutines
	SolveChunk int // nonces hashed per CompressMany call while solving
}

// DefaultConfig returns the widest batch supported by the interleaved
// multiplier and one solver per CPU.
func DefaultConfig() *Config {
	return &Config{
		BatchWidth: 4,
		Workers:    runtime.NumCPU(),
		SolveChunk: 120,
	}
}

// Validate checks config constraints and returns an error if invalid.
func (c *Config) Validate() error {
	switch c.BatchWidth {
	case 1, 3, 4:
	default:
		return fmt.Errorf("%w: BatchWidth must be 1, 3 or 4, got %d", ErrInvalidConfig, c.BatchWidth)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: Workers must be > 0", ErrInvalidConfig)
	}
	if c.SolveChunk <= 0 {
		return fmt.Errorf("%w: SolveChunk must be > 0", ErrInvalidConfig)
	}
	if c.SolveChunk%c.BatchWidth != 0 {
		return fmt.Errorf("%w: SolveChunk %d is not a multiple of BatchWidth %d",
			ErrInvalidConfig, c.SolveChunk, c.BatchWidth)
	}
	return nil
}
