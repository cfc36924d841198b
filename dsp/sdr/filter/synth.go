package filter

import (
	"math"

	"github.com/go-rf/signals/dsp/window"
)

// synthesize builds the M-tap windowed band-pass impulse response for
// spec, scaled so its passband peak magnitude equals spec.gain().
func synthesize(spec Spec, m int) []float64 {
	h := make([]float64, m)
	half := float64(m-1) / 2

	for n := 0; n < m; n++ {
		t := float64(n) - half
		h[n] = idealBandpass(t, spec.Fl, spec.Fh, spec.Fs)
	}

	w := window.Generate(spec.Window.toWindowType(), m)
	for n := range h {
		h[n] *= w[n]
	}

	scaleToGain(h, spec)

	return h
}

// idealBandpass evaluates the ideal (infinite-length) band-pass
// prototype at tap offset t, per the spec's window-method recipe:
// the difference of two sinc-shaped low-pass prototypes at fh and fl.
func idealBandpass(t, fl, fh, fs float64) float64 {
	if t == 0 {
		return 2 * (fh - fl) / fs
	}
	return (math.Sin(2*math.Pi*fh*t/fs) - math.Sin(2*math.Pi*fl*t/fs)) / (math.Pi * t)
}

// scaleToGain rescales h in place so that its response at the passband
// center frequency has magnitude spec.gain().
func scaleToGain(h []float64, spec Spec) {
	fc := (spec.Fl + spec.Fh) / 2
	peak := responseAt(h, fc, spec.Fs)
	if peak == 0 {
		return
	}

	target := spec.gain()
	factor := target / peak
	for i := range h {
		h[i] *= factor
	}
}

// responseAt evaluates |H(f)| for the real-valued tap sequence h
// directly via the DTFT sum, used only at construction time to
// normalize the passband peak.
func responseAt(h []float64, f, fs float64) float64 {
	half := float64(len(h)-1) / 2
	var re, im float64
	for n, v := range h {
		theta := -2 * math.Pi * f * (float64(n) - half) / fs
		re += v * math.Cos(theta)
		im += v * math.Sin(theta)
	}
	return math.Hypot(re, im)
}
