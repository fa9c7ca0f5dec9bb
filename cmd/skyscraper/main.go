// Command skyscraper drives the kernels from the command line: batched
// Skyscraper compression, the proof-of-work solver and CM31 transforms.
//
// Usage:
//
//	skyscraper [flags]
//
// Flags:
//
//	--mode        Workload: compress, pow, ntt (default: compress)
//	--count       Message pairs to compress (default: 1024)
//	--width       Compression batch width: 1, 3 or 4 (default: 4)
//	--workers     Solver or transform goroutines (default: NumCPU)
//	--difficulty  Proof-of-work difficulty in bits (default: 16)
//	--size        Transform size, a power of two (default: 2^18)
//	--seed        Seed for generated inputs (default: 1)
//	--loglevel    debug, info, warn or error (default: info)
//	--metrics     Print a metrics snapshot as JSON on exit
//	--version     Print version and exit
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/eth2030/skyscraper/bn254"
	"github.com/eth2030/skyscraper/cm31"
	"github.com/eth2030/skyscraper/log"
	"github.com/eth2030/skyscraper/metrics"
	"github.com/eth2030/skyscraper/ntt"
	"github.com/eth2030/skyscraper/skyscraper"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

type config struct {
	Mode       string
	Count      int
	Width      int
	Workers    int
	Difficulty float64
	Size       int
	Seed       uint64
	LogLevel   string
	Metrics    bool
}

func defaultConfig() config {
	return config{
		Mode:       "compress",
		Count:      1024,
		Width:      4,
		Workers:    runtime.NumCPU(),
		Difficulty: 16,
		Size:       1 << 18,
		Seed:       1,
		LogLevel:   "info",
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout))
}

// run is the actual entry point, returning an exit code. Results go to out;
// logs go to stderr through the log package.
func run(ctx context.Context, args []string, out io.Writer) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	log.SetDefault(log.New(level))
	logger := log.Default().Module("cmd")
	logger.Info("skyscraper starting", "version", version, "mode", cfg.Mode,
		"workers", cfg.Workers, "backend", bn254.Backend())

	switch cfg.Mode {
	case "compress":
		err = runCompress(cfg, out)
	case "pow":
		err = runPow(ctx, cfg, out)
	case "ntt":
		err = runNTT(ctx, cfg, out)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", cfg.Mode)
		return 2
	}
	if err != nil {
		logger.Error("run failed", "mode", cfg.Mode, "err", err)
		return 1
	}

	if cfg.Metrics {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(metrics.DefaultRegistry.Snapshot()); err != nil {
			logger.Error("metrics snapshot", "err", err)
			return 1
		}
	}
	return 0
}

func runCompress(cfg config, out io.Writer) error {
	h, err := skyscraper.NewHasher(&skyscraper.Config{
		BatchWidth: cfg.Width,
		Workers:    max(cfg.Workers, 1),
		SolveChunk: 30 * cfg.Width,
	})
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	msgs := make([]byte, cfg.Count*skyscraper.MessageSize)
	for i := 0; i+8 <= len(msgs); i += 8 {
		v := rng.Uint64()
		for b := 0; b < 8; b++ {
			msgs[i+b] = byte(v >> (8 * b))
		}
	}
	hashes := make([]byte, cfg.Count*skyscraper.HashSize)

	start := time.Now()
	if err := h.CompressMany(msgs, hashes); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if cfg.Count > 0 {
		last, _ := bn254.FromBytes(hashes[len(hashes)-skyscraper.HashSize:])
		fmt.Fprintf(out, "last hash: %s\n", last)
	}
	fmt.Fprintf(out, "compressed %d pairs at width %d in %v\n", cfg.Count, cfg.Width, elapsed)
	return nil
}

func runPow(ctx context.Context, cfg config, out io.Writer) error {
	scfg := skyscraper.DefaultConfig()
	scfg.BatchWidth = cfg.Width
	scfg.Workers = cfg.Workers
	scfg.SolveChunk = 30 * cfg.Width
	h, err := skyscraper.NewHasher(scfg)
	if err != nil {
		return err
	}
	var seed [8]byte
	for i := range seed {
		seed[i] = byte(cfg.Seed >> (8 * i))
	}
	challenge := skyscraper.ChallengeFromTranscript([]byte("skyscraper cli"), seed[:])

	nonce, err := h.Solve(ctx, challenge, cfg.Difficulty)
	if err != nil {
		return err
	}
	if !skyscraper.Verify(challenge, cfg.Difficulty, nonce) {
		return fmt.Errorf("nonce %d does not verify", nonce)
	}
	fmt.Fprintf(out, "challenge: %s\nnonce: %d\n", challenge, nonce)
	return nil
}

func runNTT(ctx context.Context, cfg config, out io.Writer) error {
	ecfg := ntt.DefaultConfig()
	ecfg.Workers = cfg.Workers
	e, err := ntt.NewEngine(ecfg)
	if err != nil {
		return err
	}
	tw, err := e.PrecomputeTwiddles(cfg.Size)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, 1))
	f := make([]cm31.Element, cfg.Size)
	for i := range f {
		f[i] = cm31.New(rng.Uint32N(cm31.Q), rng.Uint32N(cm31.Q))
	}

	start := time.Now()
	evals, err := e.Transform(ctx, f, tw)
	if err != nil {
		return err
	}
	forward := time.Since(start)
	back, err := e.Inverse(ctx, evals, tw)
	if err != nil {
		return err
	}
	for i := range f {
		if !back[i].Equal(f[i]) {
			return fmt.Errorf("round trip mismatch at index %d", i)
		}
	}
	fmt.Fprintf(out, "ntt size %d (%v): forward %v, round trip ok\n", cfg.Size, tw.Variant, forward)
	return nil
}

// parseFlags parses CLI arguments into a config. Returns the config, whether
// the caller should exit immediately, and the exit code.
func parseFlags(args []string) (config, bool, int) {
	cfg := defaultConfig()
	fs := newFlagSet(&cfg)
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, true, 2
	}
	if *showVersion {
		fmt.Printf("skyscraper %s (commit %s)\n", version, commit)
		return cfg, true, 0
	}
	return cfg, false, 0
}

func newFlagSet(cfg *config) *flagSet {
	fs := newCustomFlagSet("skyscraper")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "workload: compress, pow, ntt")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "message pairs to compress")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "compression batch width (1, 3 or 4)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "solver or transform goroutines")
	fs.Float64Var(&cfg.Difficulty, "difficulty", cfg.Difficulty, "proof-of-work difficulty in bits")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "transform size, a power of two")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for generated inputs")
	fs.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "print a metrics snapshot as JSON on exit")
	return fs
}
