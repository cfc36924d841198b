package dft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Hint selects the DFT kernel's plan-build strategy. It influences
// construction time only; it never changes a transform's numeric output.
type Hint int

const (
	// HintEstimate builds a plan quickly with a default strategy.
	HintEstimate Hint = iota
	// HintMeasure benchmarks a handful of strategies at construction time.
	HintMeasure
	// HintPatient spends more construction time searching for a fast plan.
	HintPatient
	// HintExhaust exhaustively searches available strategies.
	HintExhaust
)

// Engine performs forward and inverse complex DFTs of a fixed length N.
//
// An Engine is not safe for concurrent use; its plan is immutable after
// construction, so independent Engines on disjoint buffers may run on
// separate goroutines with no coordination.
type Engine struct {
	n    int
	hint Hint
	plan *algofft.Plan[complex128]
}

// New creates an Engine for transforms of length n. hint affects only how
// the underlying plan is built.
func New(n int, hint Hint) (*Engine, error) {
	if n < 2 {
		return nil, badSize("New", 2, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("dft: failed to build plan of size %d: %w", n, err)
	}

	return &Engine{n: n, hint: hint, plan: plan}, nil
}

// Size returns the transform length N.
func (e *Engine) Size() int { return e.n }

// Hint returns the optimization hint the Engine was constructed with.
func (e *Engine) Hint() Hint { return e.hint }

// FFT computes the unnormalized forward DFT:
//
//	out[k] = sum_n in[n] * exp(-2*pi*i*k*n/N)
//
// len(in) and len(out) must both equal N. in and out may alias.
func (e *Engine) FFT(out, in []complex128) error {
	if len(in) != e.n {
		return unmatchedSizes("fft", e.n, len(in))
	}
	if len(out) != e.n {
		return unmatchedSizes("fft", e.n, len(out))
	}

	if err := e.plan.Forward(out, in); err != nil {
		return fmt.Errorf("dft: fft: %w", err)
	}

	return nil
}

// IFFT computes the normalized inverse DFT:
//
//	out[n] = (1/N) * sum_k in[k] * exp(+2*pi*i*k*n/N)
//
// len(in) and len(out) must both equal N. in and out may alias. Composing
// IFFT with FFT is the identity (the 1/N scaling is folded into IFFT, not
// left for the caller).
func (e *Engine) IFFT(out, in []complex128) error {
	if len(in) != e.n {
		return unmatchedSizes("ifft", e.n, len(in))
	}
	if len(out) != e.n {
		return unmatchedSizes("ifft", e.n, len(out))
	}

	if err := e.plan.Inverse(out, in); err != nil {
		return fmt.Errorf("dft: ifft: %w", err)
	}

	return nil
}
