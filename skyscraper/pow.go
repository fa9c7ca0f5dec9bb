package skyscraper

// pow.go implements a grinding proof of work on top of Compress: a nonce is
// valid for a challenge when Compress(challenge, nonce) falls below a
// threshold that admits a 2^-difficulty fraction of the field.

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/errgroup"

	"github.com/eth2030/skyscraper/bn254"
	"github.com/eth2030/skyscraper/log"
	"github.com/eth2030/skyscraper/metrics"
	"github.com/eth2030/skyscraper/rounding"
)

// MaxDifficulty bounds the difficulty accepted by Threshold, exclusive.
const MaxDifficulty = 80

// proverBias raises the solver's difficulty slightly so float rounding in
// Threshold can never make a solved nonce fail verification.
const proverBias = 0.01

// Threshold returns the bound below which a hash satisfies difficulty
// bits: the fraction of field elements under it is at least 2^-difficulty.
func Threshold(difficulty float64) (bn254.Element, error) {
	if err := checkDifficulty(difficulty); err != nil {
		return bn254.Element{}, err
	}
	modulus := float64(bn254.P[3]) * 0x1p192
	return f64ToU256(math.Exp2(-difficulty) * modulus), nil
}

func checkDifficulty(difficulty float64) error {
	if !(difficulty >= 0 && difficulty < MaxDifficulty) {
		return fmt.Errorf("%w: %v not in [0, %d)", ErrDifficultyRange, difficulty, MaxDifficulty)
	}
	return nil
}

// Verify reports whether nonce solves challenge at difficulty. Difficulty 0
// accepts every nonce; out-of-range difficulties accept none.
func Verify(challenge bn254.Element, difficulty float64, nonce uint64) bool {
	if difficulty == 0 {
		return true
	}
	threshold, err := Threshold(difficulty)
	if err != nil {
		return false
	}
	return Compress(challenge, bn254.Element{nonce}).Less(threshold)
}

// Solve finds a nonce for challenge with the default hasher.
func Solve(ctx context.Context, challenge bn254.Element, difficulty float64) (uint64, error) {
	return defaultHasher.Solve(ctx, challenge, difficulty)
}

// Solve searches nonces in parallel and returns the smallest one found by
// any worker. Workers take interleaved chunks of SolveChunk nonces and stop
// once a smaller solution is known or ctx is done.
func (h *Hasher) Solve(ctx context.Context, challenge bn254.Element, difficulty float64) (uint64, error) {
	if err := checkDifficulty(difficulty); err != nil {
		return 0, err
	}
	if difficulty == 0 {
		return 0, nil
	}
	threshold, err := Threshold(min(difficulty+proverBias, math.Nextafter(MaxDifficulty, 0)))
	if err != nil {
		return 0, err
	}

	logger := log.Default().Module("skyscraper")
	logger.Info("pow solve started", "difficulty", difficulty, "workers", h.cfg.Workers)
	timer := metrics.NewTimer(metrics.PowSolveTime)

	var (
		best     atomic.Uint64
		attempts atomic.Int64
	)
	best.Store(math.MaxUint64)

	chunk := uint64(h.cfg.SolveChunk)
	stride := chunk * uint64(h.cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < h.cfg.Workers; w++ {
		start := uint64(w) * chunk
		g.Go(func() error {
			var err error
			rounding.Do(func(guard *bn254.Guard) {
				err = h.solveWorker(gctx, guard, challenge, threshold, start, stride, &best, &attempts)
			})
			return err
		})
	}
	err = g.Wait()
	metrics.PowAttempts.Add(attempts.Load())
	elapsed := timer.Stop()
	if err != nil {
		return 0, fmt.Errorf("skyscraper: pow solve: %w", err)
	}

	nonce := best.Load()
	logger.Info("pow solve finished", "difficulty", difficulty, "nonce", nonce,
		"attempts", attempts.Load(), "elapsed", elapsed.Round(time.Microsecond))
	return nonce, nil
}

func (h *Hasher) solveWorker(ctx context.Context, g *bn254.Guard, challenge, threshold bn254.Element,
	start, stride uint64, best *atomic.Uint64, attempts *atomic.Int64) error {
	n := h.cfg.SolveChunk
	msgs := make([]byte, n*MessageSize)
	hashes := make([]byte, n*HashSize)
	for i := 0; i < n; i++ {
		challenge.PutBytes(msgs[i*MessageSize:])
	}

	for nonce := start; ; nonce += stride {
		if nonce > best.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			bn254.Element{nonce + uint64(i)}.PutBytes(msgs[i*MessageSize+bn254.Bytes:])
		}
		if h.cfg.BatchWidth == 1 {
			compressRange(nil, msgs, hashes, 1)
		} else {
			compressRange(g, msgs, hashes, h.cfg.BatchWidth)
		}
		attempts.Add(int64(n))

		for i := 0; i < n; i++ {
			hash, _ := bn254.FromBytes(hashes[i*HashSize:])
			if hash.Less(threshold) {
				storeMin(best, nonce+uint64(i))
				return nil
			}
		}
		if nonce > math.MaxUint64-stride {
			return nil
		}
	}
}

func storeMin(v *atomic.Uint64, x uint64) {
	for {
		cur := v.Load()
		if x >= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}

// ChallengeFromTranscript derives a proof-of-work challenge from arbitrary
// transcript bytes: the Keccak-256 digest read as a little-endian integer
// and fully reduced.
func ChallengeFromTranscript(data ...[]byte) bn254.Element {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	e, _ := bn254.FromBytes(d.Sum(nil))
	return bn254.Reduce(e)
}

// f64ToU256 converts a float to the nearest 256-bit integer, clamping
// negatives to zero and values from 2^256 up, infinities and NaN to
// 2^256-1.
func f64ToU256(f float64) bn254.Element {
	b := math.Float64bits(f)
	sign := b>>63 != 0
	expBits := int((b >> 52) & 0x7ff)
	significand := b & (1<<52 - 1)
	exp := -1022
	if expBits != 0 {
		exp = expBits - 1023
		significand |= 1 << 52
	}

	if expBits == 0x7ff && b&(1<<52-1) != 0 {
		// NaN, whatever its sign bit.
		return bn254.Element{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64}
	}
	if sign {
		return bn254.Element{}
	}
	if exp >= 256 {
		return bn254.Element{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64}
	}

	var out bn254.Element
	shift := exp - 52
	if shift < 0 {
		out[0] = uint64(math.Round(f))
		return out
	}
	limb, s := shift/64, uint(shift%64)
	out[limb] = significand << s
	if s != 0 && limb < 3 {
		out[limb+1] = significand >> (64 - s)
	}
	return out
}
