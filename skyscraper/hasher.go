package skyscraper

import (
	"fmt"

	"github.com/eth2030/skyscraper/bn254"
	"github.com/eth2030/skyscraper/metrics"
	"github.com/eth2030/skyscraper/rounding"
)

const (
	// MessageSize is the encoded size of one (l, r) input pair.
	MessageSize = 2 * bn254.Bytes

	// HashSize is the encoded size of one output.
	HashSize = bn254.Bytes
)

// Hasher compresses batches of message pairs with a fixed batch width.
// A Hasher is immutable and safe for concurrent use.
type Hasher struct {
	cfg Config
}

// NewHasher returns a Hasher for cfg, or an error wrapping ErrInvalidConfig.
// A nil cfg selects DefaultConfig.
func NewHasher(cfg *Config) (*Hasher, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Hasher{cfg: *cfg}, nil
}

// Config returns a copy of the hasher's configuration.
func (h *Hasher) Config() Config { return h.cfg }

var defaultHasher = &Hasher{cfg: *DefaultConfig()}

// CompressMany hashes every 64-byte pair of msgs into the matching 32-byte
// slot of hashes using the default batch width.
func CompressMany(msgs, hashes []byte) error {
	return defaultHasher.CompressMany(msgs, hashes)
}

// CompressMany hashes every 64-byte pair of msgs (l then r, each 32
// little-endian bytes) into the matching 32-byte slot of hashes. The output
// is identical to calling Compress on each pair. Buffers of the wrong shape
// are rejected with ErrInvalidBufferShape and hashes is left untouched.
func (h *Hasher) CompressMany(msgs, hashes []byte) error {
	if err := checkShape(msgs, hashes); err != nil {
		return err
	}
	count := len(hashes) / HashSize
	if count == 0 {
		return nil
	}
	width := h.cfg.BatchWidth
	if width == 1 {
		compressRange(nil, msgs, hashes, 1)
	} else {
		rounding.Do(func(g *bn254.Guard) {
			compressRange(g, msgs, hashes, width)
		})
	}
	metrics.Compressions.Add(int64(count))
	metrics.CompressBatches.Add(int64((count + width - 1) / width))
	return nil
}

func checkShape(msgs, hashes []byte) error {
	if len(msgs)%MessageSize != 0 {
		return fmt.Errorf("%w: message buffer length %d is not a multiple of %d",
			ErrInvalidBufferShape, len(msgs), MessageSize)
	}
	if len(hashes)%HashSize != 0 {
		return fmt.Errorf("%w: hash buffer length %d is not a multiple of %d",
			ErrInvalidBufferShape, len(hashes), HashSize)
	}
	if len(msgs)/MessageSize != len(hashes)/HashSize {
		return fmt.Errorf("%w: %d messages but room for %d hashes",
			ErrInvalidBufferShape, len(msgs)/MessageSize, len(hashes)/HashSize)
	}
	return nil
}

// compressRange hashes all pairs in blocks of width. A short final block is
// padded with zero states whose outputs are dropped.
func compressRange(g *bn254.Guard, msgs, hashes []byte, width int) {
	count := len(hashes) / HashSize
	for base := 0; base < count; base += width {
		s := lanes{n: width}
		active := min(width, count-base)
		for i := 0; i < active; i++ {
			m := msgs[(base+i)*MessageSize:]
			s.l[i], _ = bn254.FromBytes(m[:bn254.Bytes])
			s.r[i], _ = bn254.FromBytes(m[bn254.Bytes:MessageSize])
		}
		out := s.compress(g)
		for i := 0; i < active; i++ {
			out[i].PutBytes(hashes[(base+i)*HashSize:])
		}
	}
}
