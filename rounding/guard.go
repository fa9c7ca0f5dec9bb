package rounding

import (
	"fmt"
	"runtime"

	"github.com/eth2030/skyscraper/metrics"
)

// Guard holds the calling goroutine on its OS thread with the rounding mode
// set to M. Release restores the mode found at acquisition and unpins the
// goroutine.
//
// A Guard belongs to the goroutine that acquired it. Passing it to another
// goroutine voids the proof: that goroutine may run on a thread whose
// register was never written. Builds tagged skyscraperdebug verify the
// register on every Check.
//
// Guards nest on one goroutine as long as they are released in reverse order
// of acquisition; each release restores the enclosing mode.
type Guard[M Mode] struct {
	prev     uint64
	released bool
	_        noCopy
}

// noCopy lets go vet's copylocks check flag guards copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Acquire pins the goroutine to its thread, saves the current control word
// and switches the rounding mode to M. The register writes are fenced on both
// sides.
func Acquire[M Mode]() *Guard[M] {
	runtime.LockOSThread()
	g := &Guard[M]{}
	if hasControl {
		g.prev = getControl()
		setControl(withBits(g.prev, BitsOf[M]()))
	}
	metrics.RoundingGuardsActive.Inc()
	return g
}

// Release restores the control word saved by Acquire. Releasing twice is a
// no-op.
func (g *Guard[M]) Release() {
	if g.released {
		return
	}
	g.released = true
	if hasControl {
		setControl(g.prev)
	}
	metrics.RoundingGuardsActive.Dec()
	runtime.UnlockOSThread()
}

// Check panics in debug builds if the guard was released or the thread's
// rounding mode is not M. It compiles to nothing otherwise.
func (g *Guard[M]) Check() {
	if !debugChecks {
		return
	}
	if g == nil {
		panic("rounding: nil guard")
	}
	if g.released {
		panic("rounding: guard used after release")
	}
	if hasControl {
		if got, want := Current(), BitsOf[M](); got != want {
			panic(fmt.Sprintf("rounding: thread mode is %v, guard requires %v", got, want))
		}
	}
}

// Do runs fn with the rounding mode set to M and restores the previous mode
// on every exit path, including panics.
func Do[M Mode](fn func(g *Guard[M])) {
	g := Acquire[M]()
	defer g.Release()
	fn(g)
}
