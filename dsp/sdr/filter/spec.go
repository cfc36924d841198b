package filter

import "github.com/go-rf/signals/dsp/window"

// WindowKind selects the taper applied to the synthesized sinc
// prototype. It mirrors the subset of dsp/window kinds the passband
// synthesis recipe supports.
type WindowKind int

const (
	WindowNone WindowKind = iota
	WindowHamming
	WindowHann
	WindowBlackman
)

func (k WindowKind) toWindowType() window.Type {
	switch k {
	case WindowHamming:
		return window.TypeHamming
	case WindowHann:
		return window.TypeHann
	case WindowBlackman:
		return window.TypeBlackman
	default:
		return window.TypeRectangular
	}
}

// Spec describes a band-pass filter by its passband edges and synthesis
// parameters, per the window-method recipe in [New].
type Spec struct {
	// Fs is the sample rate in Hz.
	Fs float64
	// Fl and Fh are the passband low and high edges in Hz, satisfying
	// -Fs/2 <= Fl < Fh <= Fs/2.
	Fl, Fh float64
	// TransitionWidth is the target transition-band width in Hz, used
	// to derive the tap count when Taps is zero.
	TransitionWidth float64
	// StopbandDB is the target stopband attenuation in dB. Defaults to
	// 50 when zero.
	StopbandDB float64
	// Taps, if positive, overrides the derived tap count. It is forced
	// odd regardless of the value supplied.
	Taps int
	// Window selects the taper applied to the ideal sinc prototype.
	Window WindowKind
	// Gain is the desired passband peak gain. Defaults to 1.0 when zero.
	Gain float64
}

func (s Spec) stopbandDB() float64 {
	if s.StopbandDB == 0 {
		return 50
	}
	return s.StopbandDB
}

func (s Spec) gain() float64 {
	if s.Gain == 0 {
		return 1.0
	}
	return s.Gain
}

func (s Spec) validate() error {
	if s.Fs <= 0 {
		return badSpec("sample rate must be positive")
	}
	if s.Fl < -s.Fs/2 || s.Fh > s.Fs/2 || s.Fl >= s.Fh {
		return badSpec("passband edges must satisfy -Fs/2 <= fl < fh <= Fs/2")
	}
	if s.Taps == 0 && s.TransitionWidth <= 0 {
		return badSpec("transition width must be positive when tap count is not given explicitly")
	}
	return nil
}

// tapCount returns the synthesized tap count M = ceil(Fs*A/(22*w)),
// forced odd, or the caller-supplied Spec.Taps forced odd.
func (s Spec) tapCount() int {
	if s.Taps > 0 {
		return forceOdd(s.Taps)
	}

	m := int(ceilDiv(s.Fs*s.stopbandDB(), 22*s.TransitionWidth))
	return forceOdd(m)
}

func forceOdd(m int) int {
	if m%2 == 0 {
		return m + 1
	}
	return m
}

func ceilDiv(num, den float64) float64 {
	q := num / den
	if q == float64(int(q)) {
		return q
	}
	if q < 0 {
		return float64(int(q))
	}
	return float64(int(q) + 1)
}
