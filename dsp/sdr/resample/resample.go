package resample

import (
	"math"

	"github.com/go-rf/signals/dsp/sdr/dft"
	"github.com/go-rf/signals/dsp/sdr/filter"
)

// Resampler converts a fixed-size block of complex samples from Fin to
// Fout by forward-transforming the input, applying an anti-alias
// spectral multiply, copying bins into a differently sized transform,
// and inverse-transforming. A Resampler is stateful across Apply calls
// (it keeps a save-buffer of the last D input samples) and must be
// driven in input order by a single owner.
type Resampler struct {
	fin, fout float64
	u, d      int
	lx, ly    int
	m         int // anti-alias filter's synthesized tap count

	antiAlias []complex128 // length lx, zero-bin-first
	engineX   *dft.Engine
	engineY   *dft.Engine

	scratch []complex128 // length lx, history-prepended transform input
	x       []complex128 // length lx, reused scratch
	y       []complex128 // length ly, reused scratch
	save    []complex128 // length d, last d raw input samples from the prior call
}

// New constructs a Resampler for converting from Fin to Fout, sized so
// that a single Apply call processes approximately T seconds of input.
// Fin and Fout must be positive integral sample rates.
func New(fin, fout, t float64) (*Resampler, error) {
	if fin <= 0 || fout <= 0 || t <= 0 {
		return nil, badRate(fin, fout, t)
	}

	fi := int(math.Round(fin))
	fo := int(math.Round(fout))
	if float64(fi) != fin || float64(fo) != fout {
		return nil, badRate(fin, fout, t)
	}

	g := gcd(fi, fo)
	u := fo / g
	d := fi / g

	lx, err := goodMultiple(d, t*fin)
	if err != nil {
		return nil, badRate(fin, fout, t)
	}

	ly := lx * u / d
	if ly*d != lx*u {
		return nil, badRate(fin, fout, t)
	}

	cutoff := math.Min(fin, fout) / 2
	spec := filter.Spec{
		Fs:              fin,
		Fl:              -cutoff,
		Fh:              cutoff,
		TransitionWidth: cutoff * 0.1,
		Window:          filter.WindowHamming,
	}

	image, m, err := filter.Image(spec, lx)
	if err != nil {
		return nil, err
	}

	engineX, err := dft.New(lx, dft.HintEstimate)
	if err != nil {
		return nil, err
	}
	engineY, err := dft.New(ly, dft.HintEstimate)
	if err != nil {
		return nil, err
	}

	return &Resampler{
		fin: fin, fout: fout,
		u: u, d: d,
		lx: lx, ly: ly,
		m:         m,
		antiAlias: image,
		engineX:   engineX,
		engineY:   engineY,
		scratch:   make([]complex128, lx),
		x:         make([]complex128, lx),
		y:         make([]complex128, ly),
		save:      make([]complex128, d),
	}, nil
}

// goodMultiple returns the smallest multiple of d that is both >= min
// and itself good-size factored (2^a*3^b*5^c*7^d), searching a bounded
// range of multiples above ceil(min/d).
func goodMultiple(d int, min float64) (int, error) {
	k := int(math.Ceil(min / float64(d)))
	if k < 1 {
		k = 1
	}

	const maxAttempts = 1 << 20
	for i := 0; i < maxAttempts; i++ {
		candidate := d * (k + i)
		if dft.IsGoodSize(candidate) {
			return candidate, nil
		}
	}

	return 0, errNoGoodMultiple
}

// GetInputBufferSize returns the fixed input block length Lx.
func (r *Resampler) GetInputBufferSize() int { return r.lx }

// GetOutputBufferSize returns the fixed output block length Ly.
func (r *Resampler) GetOutputBufferSize() int { return r.ly }

// GetScaleFactor returns the steady-state amplitude scale applied during
// Apply. Copying a bin from the length-Lx spectrum into the length-Ly
// spectrum carries an implicit Lx/Ly gain once engineY's inverse
// transform normalizes by Ly (not Lx); recovering unit amplitude needs
// the reciprocal, Ly/Lx, which reduces to U/D.
func (r *Resampler) GetScaleFactor() float64 { return float64(r.u) / float64(r.d) }

// DiscardCount returns the number of leading output samples per Apply
// call that are affected by the block boundary (M*U/D, where M is the
// anti-alias filter's synthesized tap count). Apply zeroes this many
// leading samples of every out it produces; callers assembling a
// continuous stream should skip them, exactly as they would with the
// leading samples of the very first call before any history exists.
func (r *Resampler) DiscardCount() int { return r.m * r.u / r.d }

// Apply converts one Lx-sample input block to one Ly-sample output
// block. in and out must not alias each other.
//
// Apply maintains continuity across calls the way overlap-save does:
// the last D samples saved from the previous call are prepended ahead
// of this call's first Lx-D samples to form the transform input, so
// the anti-alias spectral multiply sees real history instead of a
// zero-padded or wrapped edge. This call's own last D samples are
// saved for the next call; they are not transformed now. The leading
// DiscardCount samples of out are zeroed, since even with history
// wired in they still carry residual edge transient from the spectral
// copy.
func (r *Resampler) Apply(out, in []complex128) error {
	if len(in) != r.lx {
		return badBufferSize("apply", r.lx, len(in))
	}
	if len(out) != r.ly {
		return badBufferSize("apply", r.ly, len(out))
	}

	n := copy(r.scratch, r.save)
	copy(r.scratch[n:], in[:r.lx-r.d])

	if err := r.engineX.FFT(r.x, r.scratch); err != nil {
		return err
	}
	for k := range r.x {
		r.x[k] *= r.antiAlias[k]
	}

	half := r.ly / 2
	if half > r.lx/2 {
		half = r.lx / 2
	}
	for i := range r.y {
		r.y[i] = 0
	}
	for k := 0; k < half; k++ {
		r.y[k] = r.x[k]
		r.y[r.ly-1-k] = r.x[r.lx-1-k]
	}

	if err := r.engineY.IFFT(r.y, r.y); err != nil {
		return err
	}

	scale := complex(r.GetScaleFactor(), 0)
	for i, v := range r.y {
		r.y[i] = v * scale
	}

	discard := r.DiscardCount()
	if discard > len(out) {
		discard = len(out)
	}
	for i := 0; i < discard; i++ {
		out[i] = 0
	}
	copy(out[discard:], r.y[discard:])

	copy(r.save, in[len(in)-len(r.save):])

	return nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
