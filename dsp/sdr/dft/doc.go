// Package dft wraps a fixed-length complex-to-complex DFT for use by the
// other dsp/sdr packages (filter, resample, periodogram).
//
// An [Engine] owns one forward/inverse transform pair of a fixed length N,
// backed by github.com/MeKo-Christian/algo-fft. [Engine.FFT] is unnormalized;
// [Engine.IFFT] is normalized by the underlying library, so composing
// [Engine.IFFT] with [Engine.FFT] is the identity. Bin ordering is
// zero-bin-first (DC at index 0); [Shift] and [Ishift] convert to and from
// DC-centered order. [GoodSize] finds transform lengths that factor cleanly
// into small primes, which both algo-fft and resampling arithmetic prefer.
package dft
