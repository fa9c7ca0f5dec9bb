package ntt

import (
	"context"
	"fmt"
	"sync"

	"github.com/eth2030/skyscraper/cm31"
	"github.com/eth2030/skyscraper/log"
	"github.com/eth2030/skyscraper/metrics"
)

// Engine runs transforms with the outer radix-8 levels spread over a
// bounded set of goroutines. Results are identical to the sequential
// functions. An Engine is safe for concurrent use.
type Engine struct {
	cfg  Config
	pool sync.Pool // transform work space
}

// NewEngine returns an Engine for cfg, or an error wrapping
// ErrInvalidConfig. A nil cfg selects DefaultConfig.
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Default().Module("ntt").Debug("engine created",
		"workers", cfg.Workers, "leaf", cfg.LeafSize, "parallelMin", cfg.ParallelMinSize)
	return &Engine{cfg: *cfg}, nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// PrecomputeTwiddles builds a bundle for size n with the engine's leaf size.
func (e *Engine) PrecomputeTwiddles(n int) (*Twiddles, error) {
	return precompute(n, e.cfg.LeafSize)
}

func (e *Engine) runner(tw *Twiddles) runner {
	return runner{
		tw:     tw,
		pool:   &e.pool,
		sem:    make(chan struct{}, e.cfg.Workers),
		parMin: e.cfg.ParallelMinSize,
	}
}

// Transform computes the forward transform of f. A nil tw builds the
// bundle first. Cancelling ctx stops outstanding sub-transforms and
// returns ctx's error.
func (e *Engine) Transform(ctx context.Context, f []cm31.Element, tw *Twiddles) ([]cm31.Element, error) {
	tw, err := bundleFor(f, tw, e.cfg.LeafSize)
	if err != nil {
		return nil, err
	}
	timer := metrics.NewTimer(metrics.NTTTransformTime)
	defer timer.Stop()

	out, err := e.runner(tw).transform(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("ntt: transform of size %d: %w", len(f), err)
	}
	return out, nil
}

// Inverse computes the inverse transform of f.
func (e *Engine) Inverse(ctx context.Context, f []cm31.Element, tw *Twiddles) ([]cm31.Element, error) {
	tw, err := bundleFor(f, tw, e.cfg.LeafSize)
	if err != nil {
		return nil, err
	}
	timer := metrics.NewTimer(metrics.NTTTransformTime)
	defer timer.Stop()

	out, err := e.runner(tw).inverse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("ntt: inverse of size %d: %w", len(f), err)
	}
	return out, nil
}
