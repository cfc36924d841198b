package periodogram

import (
	"math"

	"github.com/go-rf/signals/dsp/buffer"
	"github.com/go-rf/signals/dsp/sdr/dft"
	"github.com/go-rf/signals/dsp/spectrum"
	"github.com/go-rf/signals/dsp/window"
	"github.com/go-rf/signals/internal/vecmath"
)

// Periodogram accumulates a Welch-style power spectral density
// estimate from a continuous complex input stream. It is stateful
// across Accumulate calls and must be driven in input order by a
// single owner; see New.
type Periodogram struct {
	n      int
	half   int
	alpha  float64
	w      []float64 // window, length n, normalized so sum(w^2) == n
	wSumSq float64

	engine *dft.Engine

	accum *buffer.Buffer // A, length n
	save  []complex128   // S, length n/2

	segment []complex128 // reused scratch, length n
	x       []complex128 // reused scratch, length n
	re, im  []float64    // reused scratch, length n
	pow     []float64    // reused scratch, length n
	scaled  []float64    // reused scratch, length n

	pending []complex128 // samples seen since the last complete half-segment
	count   int          // n, number of segments accumulated
}

// New constructs a Periodogram with the given segment length (forced
// even if odd) and options. The default accumulation factor is 0 (a
// plain running sum) and the default window is Hann.
func New(n int, opts ...Option) (*Periodogram, error) {
	if n <= 0 {
		return nil, &SizeError{Requested: n}
	}
	if n%2 != 0 {
		n++
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.alpha < 0 || cfg.alpha >= 1 {
		return nil, &AlphaError{Alpha: cfg.alpha}
	}

	engine, err := dft.New(n, dft.HintEstimate)
	if err != nil {
		return nil, err
	}

	w := normalizedWindow(cfg.window, n)

	return &Periodogram{
		n: n, half: n / 2,
		alpha:  cfg.alpha,
		w:      w,
		wSumSq: float64(n),
		engine: engine,

		accum: buffer.New(n),
		save:  make([]complex128, n/2),

		segment: make([]complex128, n),
		x:       make([]complex128, n),
		re:      make([]float64, n),
		im:      make([]float64, n),
		pow:     make([]float64, n),
		scaled:  make([]float64, n),
	}, nil
}

// normalizedWindow generates a window of length n and rescales it so
// that sum(w[k]^2) == n, per the Periodogram contract.
func normalizedWindow(kind WindowKind, n int) []float64 {
	w := window.Generate(kind.toWindowType(), n)

	sq := make([]float64, n)
	zeros := make([]float64, n)
	spectrum.PowerFromParts(sq, w, zeros)
	sumSq := vecmath.Sum(sq)
	if sumSq == 0 {
		return w
	}

	factor := math.Sqrt(float64(n) / sumSq)
	vecmath.ScaleBlockInPlace(w, factor)

	return w
}

// Size returns the segment length N.
func (p *Periodogram) Size() int { return p.n }

// Accumulate consumes data of any length, internally tracking how
// much of the next half-segment has been seen. Each time N/2 fresh
// samples complete a segment, it is windowed, forward-transformed, and
// folded into the accumulator.
func (p *Periodogram) Accumulate(data []complex128) error {
	p.pending = append(p.pending, data...)

	for len(p.pending) >= p.half {
		newHalf := p.pending[:p.half]
		if err := p.processSegment(newHalf); err != nil {
			return err
		}
		p.pending = append(p.pending[:0], p.pending[p.half:]...)
	}

	return nil
}

func (p *Periodogram) processSegment(newHalf []complex128) error {
	copy(p.segment[:p.half], p.save)
	copy(p.segment[p.half:], newHalf)

	for i, v := range p.segment {
		p.segment[i] = complex(real(v)*p.w[i], imag(v)*p.w[i])
	}

	if err := p.engine.FFT(p.x, p.segment); err != nil {
		return err
	}

	for i, v := range p.x {
		p.re[i] = real(v)
		p.im[i] = imag(v)
	}
	spectrum.PowerFromParts(p.pow, p.re, p.im)

	a := p.accum.Samples()
	if p.alpha == 0 {
		vecmath.AddBlockInPlace(a, p.pow)
	} else {
		vecmath.ScaleBlockInPlace(a, p.alpha)
		vecmath.ScaleBlock(p.scaled, p.pow, 1-p.alpha)
		vecmath.AddBlockInPlace(a, p.scaled)
	}
	p.count++

	copy(p.save, newHalf)

	return nil
}

// Get returns the DC-centered accumulator, a real-valued vector of
// length N. The returned slice is owned by the caller.
func (p *Periodogram) Get() ([]float64, error) {
	in := make([]complex128, p.n)
	for i, v := range p.accum.Samples() {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, p.n)
	if err := dft.Shift(out, in); err != nil {
		return nil, err
	}

	result := make([]float64, p.n)
	for i, v := range out {
		result[i] = real(v)
	}

	return result, nil
}

// GetScaleFactor returns the factor by which Get's result should be
// divided to obtain a normalized PSD estimate: 1/(n*W) when alpha is
// 0 (a plain sum across n segments), or 1/W when alpha > 0 (the
// exponential average is already normalized per segment), where
// W = sum(w[k]^2).
func (p *Periodogram) GetScaleFactor() float64 {
	if p.alpha == 0 {
		return 1 / (float64(p.count) * p.wSumSq)
	}
	return 1 / p.wSumSq
}

// Clear zeros the accumulator, empties the save-buffer and pending
// staging area, and resets the segment count.
func (p *Periodogram) Clear() {
	p.accum.Zero()
	for i := range p.save {
		p.save[i] = 0
	}
	p.pending = p.pending[:0]
	p.count = 0
}
