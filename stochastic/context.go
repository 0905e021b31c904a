// SPDX-License-Identifier: MIT

package stochastic

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Samples is the number of synchronized samples carried by a Float.
const Samples = 3

// DefaultCancellationLevel is the digit loss in one addition or subtraction
// above which a cancellation is reported.
const DefaultCancellationLevel = 4

// pcgStream is the fixed PCG stream selector; only the seed varies.
const pcgStream = 0x9e3779b97f4a7c15

// Kind names one class of numerical instability.
type Kind int

const (
	// UnstableDivision: the divisor is a computational zero.
	UnstableDivision Kind = iota
	// UnstableMultiplication: both factors are computational zeros.
	UnstableMultiplication
	// UnstablePower: the base of an integer power is a computational zero.
	UnstablePower
	// UnstableBranching: a comparison between operands whose difference is
	// a computational zero.
	UnstableBranching
	// Cancellation: an addition or subtraction lost at least the
	// cancellation level of significant digits.
	Cancellation

	numKinds
)

var kindNames = [numKinds]string{
	UnstableDivision:       "unstable division(s)",
	UnstableMultiplication: "unstable multiplication(s)",
	UnstablePower:          "unstable power function(s)",
	UnstableBranching:      "unstable branching(s)",
	Cancellation:           "loss(es) of accuracy due to cancellation",
}

// String returns the report label of k.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Option configures Init.
type Option func(*options)

type options struct {
	seed        uint64
	cancelLevel int
	detect      bool
}

// WithSeed fixes the random rounding sequence. Zero seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithCancellationLevel sets the digit loss reported as a cancellation.
// Panics if level < 1 (programmer error).
func WithCancellationLevel(level int) Option {
	if level < 1 {
		panic("stochastic: WithCancellationLevel: level must be >= 1")
	}

	return func(o *options) { o.cancelLevel = level }
}

// WithoutInstabilityDetection turns off every instability counter.
func WithoutInstabilityDetection() Option {
	return func(o *options) { o.detect = false }
}

// Context owns the random source and the instability counters of one run.
type Context struct {
	rng         *rand.Rand
	bits        uint64 // buffered random bits
	nbits       int    // how many of bits are unused
	seed        uint64
	cancelLevel int
	detect      bool
	counts      [numKinds]uint64
}

// Init starts a stochastic run.
func Init(opts ...Option) *Context {
	o := options{cancelLevel: DefaultCancellationLevel, detect: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = uint64(time.Now().UnixNano())
	}

	return &Context{
		rng:         rand.New(rand.NewPCG(o.seed, pcgStream)),
		seed:        o.seed,
		cancelLevel: o.cancelLevel,
		detect:      o.detect,
	}
}

// Seed returns the effective seed, useful to replay a run.
func (c *Context) Seed() uint64 { return c.seed }

// coin returns one fair random bit.
func (c *Context) coin() bool {
	if c.nbits == 0 {
		c.bits = c.rng.Uint64()
		c.nbits = 64
	}
	b := c.bits&1 == 1
	c.bits >>= 1
	c.nbits--

	return b
}

// note counts one instability of kind k; nil contexts count nothing.
func (c *Context) note(k Kind) {
	if c != nil && c.detect {
		c.counts[k]++
	}
}

func (c *Context) detecting() bool { return c != nil && c.detect }

// Report returns a snapshot of the counters without ending the run.
func (c *Context) Report() Report {
	return Report{counts: c.counts}
}

// End finishes the run: detection stops and the final Report is returned.
// Arithmetic on Floats of this context keeps working after End.
func (c *Context) End() Report {
	c.detect = false

	return c.Report()
}

// Report is the instability summary of a run.
type Report struct {
	counts [numKinds]uint64
}

// Count returns the counter of kind k.
func (r Report) Count(k Kind) uint64 {
	if k < 0 || k >= numKinds {
		return 0
	}

	return r.counts[k]
}

// Total sums every counter.
func (r Report) Total() uint64 {
	var t uint64
	for _, n := range r.counts {
		t += n
	}

	return t
}

// String renders the summary printed at the end of a stochastic run.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString("----------------------------------------------------------------\n")
	if r.Total() == 0 {
		b.WriteString("No instability detected\n")
	} else {
		fmt.Fprintf(&b, "There are %d numerical instabilities\n", r.Total())
		for k := Kind(0); k < numKinds; k++ {
			if n := r.counts[k]; n > 0 {
				fmt.Fprintf(&b, "%d %s\n", n, k)
			}
		}
	}
	b.WriteString("----------------------------------------------------------------\n")

	return b.String()
}
