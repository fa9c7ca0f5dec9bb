// Package skyscraper implements the Skyscraper two-to-one compression
// function over the BN254 scalar field.
//
// compress.go holds the 18-round permutation. Squaring rounds go through the
// interleaved Montgomery multipliers of package bn254 so a batch of three or
// four states costs about as much as one; Bar rounds are byte-wise and
// branch-free.
package skyscraper

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/eth2030/skyscraper/bn254"
)

// Rounds is the number of keyed rounds before the final squaring round.
const Rounds = 17

// maxWidth is the widest batch the interleaved multipliers provide.
const maxWidth = 4

// isBarRound reports whether round uses Bar instead of squaring.
func isBarRound(round int) bool {
	switch round {
	case 6, 7, 10, 11:
		return true
	}
	return false
}

// lanes is a batch of up to maxWidth independent permutation states.
type lanes struct {
	n int
	l [maxWidth]bn254.Element
	r [maxWidth]bn254.Element
	t [maxWidth]bn254.Element // partially reduced input l, for feed-forward
}

// square returns the Montgomery squares of the active l values. Batches of
// three or four run on the interleaved multipliers and need g; a single
// lane uses the scalar kernel only.
func (s *lanes) square(g *bn254.Guard) [maxWidth]bn254.Element {
	var out [maxWidth]bn254.Element
	switch s.n {
	case 1:
		out[0] = bn254.Sqr(s.l[0])
	case 3:
		var v [2]bn254.Element
		out[0], v = bn254.SquareInterleaved3(g, s.l[0], [2]bn254.Element{s.l[1], s.l[2]})
		out[1], out[2] = v[0], v[1]
	case 4:
		var v [2]bn254.Element
		out[0], out[1], v = bn254.SquareInterleaved4(g, s.l[0], s.l[1], [2]bn254.Element{s.l[2], s.l[3]})
		out[2], out[3] = v[0], v[1]
	default:
		panic("skyscraper: unsupported batch width")
	}
	return out
}

// permute runs rounds 0..16 in place. Every l stays below 2p between rounds.
func (s *lanes) permute(g *bn254.Guard) {
	for i := 0; i < s.n; i++ {
		s.l[i] = bn254.ReducePartial(s.l[i])
		s.r[i] = bn254.ReducePartial(s.r[i])
		s.t[i] = s.l[i]
	}

	sq := s.square(g)
	for i := 0; i < s.n; i++ {
		s.l[i], s.r[i] = bn254.ReducePartial(bn254.Add(s.r[i], sq[i])), s.l[i]
	}

	for round := 1; round < Rounds; round++ {
		if isBarRound(round) {
			for i := 0; i < s.n; i++ {
				s.l[i], s.r[i] = bn254.ReducePartialAddRC(bn254.Add(s.r[i], Bar(s.l[i])), round), s.l[i]
			}
			continue
		}
		sq = s.square(g)
		for i := 0; i < s.n; i++ {
			s.l[i], s.r[i] = bn254.ReducePartialAddRC(bn254.Add(s.r[i], sq[i]), round), s.l[i]
		}
	}
}

// finalRound returns ReducePartial(r + l^2) per lane, the left output of the
// permutation before full reduction.
func (s *lanes) finalRound(g *bn254.Guard) [maxWidth]bn254.Element {
	sq := s.square(g)
	var out [maxWidth]bn254.Element
	for i := 0; i < s.n; i++ {
		out[i] = bn254.ReducePartial(bn254.Add(s.r[i], sq[i]))
	}
	return out
}

// compress runs the permutation and the Davies-Meyer feed-forward.
func (s *lanes) compress(g *bn254.Guard) [maxWidth]bn254.Element {
	s.permute(g)
	out := s.finalRound(g)
	for i := 0; i < s.n; i++ {
		out[i] = bn254.Reduce(bn254.Add(out[i], s.t[i]))
	}
	return out
}

// Compress hashes the pair (l, r) to one fully reduced field element. Any
// 256-bit inputs are accepted; they are partially reduced first. Only the
// scalar multiplier is used, so no rounding guard is needed.
func Compress(l, r bn254.Element) bn254.Element {
	s := lanes{n: 1}
	s.l[0], s.r[0] = l, r
	return s.compress(nil)[0]
}

// Permute applies the bare permutation, without feed-forward, and returns
// both halves fully reduced.
func Permute(l, r bn254.Element) (bn254.Element, bn254.Element) {
	s := lanes{n: 1}
	s.l[0], s.r[0] = l, r
	s.permute(nil)
	out := s.finalRound(nil)
	return bn254.Reduce1(out[0]), bn254.Reduce1(s.l[0])
}

// CompressFr hashes two gnark-crypto elements. The Montgomery limbs are
// hashed as they are, matching Compress on the same limbs.
func CompressFr(l, r *fr.Element) fr.Element {
	return fr.Element(Compress(bn254.FromFr(l), bn254.FromFr(r)))
}
