package filter

import (
	"github.com/go-rf/signals/dsp/sdr/dft"
)

// Mode controls which of Apply's transforms are skipped because the
// caller has already supplied (or wants to receive) frequency-domain
// data. The zero value, ModeTimeDomain, performs both transforms.
type Mode int

const (
	// ModeTimeDomain performs both the forward and inverse transform;
	// in and out are ordinary time-domain sample buffers of length B.
	ModeTimeDomain Mode = 0
	// ModeInputFrequency means in is already the length-L frequency
	// image to multiply by H; the forward transform is skipped.
	ModeInputFrequency Mode = 1 << 0
	// ModeOutputFrequency means out receives the length-L pointwise
	// product Y directly; the inverse transform is skipped.
	ModeOutputFrequency Mode = 1 << 1
)

// Filter applies a fixed FIR band-pass response to streaming complex
// input via overlap-save in the frequency domain. A Filter is stateful
// across Apply calls and must be driven in input order by a single
// owner; see [New].
type Filter struct {
	b int // fixed apply buffer size
	l int // overlap-save transform length
	m int // synthesized tap count (0 for NewFromImage)

	h      []complex128 // frequency-domain image, length l
	engine *dft.Engine

	save    []complex128 // overlap save-buffer, length l-b
	scratch []complex128 // length l, reused across Apply calls
	x       []complex128 // length l, reused across Apply calls
	y       []complex128 // length l, reused across Apply calls
}

// New constructs a Filter from a passband spec and a fixed apply
// buffer size b. It synthesizes the tap sequence (window method),
// zero-pads to the overlap-save transform length, and forward-
// transforms the result to obtain the stored frequency image.
func New(spec Spec, b int) (*Filter, error) {
	if b <= 0 {
		return nil, badSpec("buffer size must be positive")
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}

	m := spec.tapCount()
	l := dft.GoodSize(b + m - 1)

	h, _, err := Image(spec, l)
	if err != nil {
		return nil, err
	}

	engine, err := dft.New(l, dft.HintEstimate)
	if err != nil {
		return nil, err
	}

	return newFilter(b, l, m, h, engine), nil
}

// Image synthesizes a band-pass frequency-domain image of exactly the
// requested transform length, per the window-method recipe in [New],
// without allocating overlap-save state. It is meant for components
// that need a spectral multiply image directly — for instance a
// resampler's anti-alias stage — rather than a streaming [Filter].
// It returns the image and the synthesized tap count.
func Image(spec Spec, length int) ([]complex128, int, error) {
	if err := spec.validate(); err != nil {
		return nil, 0, err
	}

	m := spec.tapCount()
	if m > length {
		return nil, 0, badSpec("synthesized tap count exceeds requested image length")
	}

	taps := synthesize(spec, m)

	padded := make([]complex128, length)
	for i, v := range taps {
		padded[i] = complex(v, 0)
	}

	engine, err := dft.New(length, dft.HintEstimate)
	if err != nil {
		return nil, 0, err
	}

	h := make([]complex128, length)
	if err := engine.FFT(h, padded); err != nil {
		return nil, 0, err
	}

	return h, m, nil
}

// NewFromImage constructs a Filter directly from a pre-transformed
// frequency-domain image h of length l, skipping tap-count derivation
// and windowing entirely. h is used verbatim (after the caller's own
// scaling); this is the path for filters built from an externally
// supplied prototype response.
func NewFromImage(h []complex128, b int) (*Filter, error) {
	if b <= 0 {
		return nil, badSpec("buffer size must be positive")
	}
	l := len(h)
	if l < b {
		return nil, badSpec("image length must be at least the apply buffer size")
	}

	engine, err := dft.New(l, dft.HintEstimate)
	if err != nil {
		return nil, err
	}

	image := make([]complex128, l)
	copy(image, h)

	return newFilter(b, l, 0, image, engine), nil
}

func newFilter(b, l, m int, h []complex128, engine *dft.Engine) *Filter {
	return &Filter{
		b:       b,
		l:       l,
		m:       m,
		h:       h,
		engine:  engine,
		save:    make([]complex128, l-b),
		scratch: make([]complex128, l),
		x:       make([]complex128, l),
		y:       make([]complex128, l),
	}
}

// GetInputBufferSize returns the fixed time-domain input length B.
func (f *Filter) GetInputBufferSize() int { return f.b }

// GetOutputBufferSize returns the fixed time-domain output length B.
func (f *Filter) GetOutputBufferSize() int { return f.b }

// GetFilterLength returns the overlap-save transform length L.
func (f *Filter) GetFilterLength() int { return f.l }

// Image returns the stored frequency-domain image H, zero-bin-first,
// length L. Callers must not mutate the returned slice.
func (f *Filter) Image() []complex128 { return f.h }

// Apply is ApplyMode with ModeTimeDomain: in and out are both ordinary
// time-domain buffers of length B. in and out may alias.
func (f *Filter) Apply(out, in []complex128) error {
	return f.ApplyMode(out, in, ModeTimeDomain)
}

// ApplyMode runs one overlap-save step, skipping the forward and/or
// inverse transform according to mode. With ModeTimeDomain, in and out
// have length B; with ModeInputFrequency, in has length L; with
// ModeOutputFrequency, out has length L.
func (f *Filter) ApplyMode(out, in []complex128, mode Mode) error {
	if mode&ModeInputFrequency != 0 {
		if len(in) != f.l {
			return badBufferSize("apply", f.l, len(in))
		}
		copy(f.x, in)
	} else {
		if len(in) != f.b {
			return badBufferSize("apply", f.b, len(in))
		}

		n := copy(f.scratch, f.save)
		copy(f.scratch[n:], in)

		if err := f.engine.FFT(f.x, f.scratch); err != nil {
			return err
		}

		copy(f.save, f.scratch[f.l-len(f.save):])
	}

	for k := range f.x {
		f.x[k] *= f.h[k]
	}

	if mode&ModeOutputFrequency != 0 {
		if len(out) != f.l {
			return badBufferSize("apply", f.l, len(out))
		}
		copy(out, f.x)
		return nil
	}

	if len(out) != f.b {
		return badBufferSize("apply", f.b, len(out))
	}

	if err := f.engine.IFFT(f.y, f.x); err != nil {
		return err
	}

	copy(out, f.y[f.l-f.b:])

	return nil
}

// ApplyReal is the real-valued overload: it requires the filter to
// have been constructed from a conjugate-symmetric image (a real
// impulse response), and both buffers are real-valued of length B.
func (f *Filter) ApplyReal(out, in []float64) error {
	if len(in) != f.b {
		return badBufferSize("apply", f.b, len(in))
	}
	if len(out) != f.b {
		return badBufferSize("apply", f.b, len(out))
	}

	cin := make([]complex128, f.b)
	for i, v := range in {
		cin[i] = complex(v, 0)
	}
	cout := make([]complex128, f.b)

	if err := f.Apply(cout, cin); err != nil {
		return err
	}

	for i, v := range cout {
		out[i] = real(v)
	}

	return nil
}
