// Package periodogram implements a Welch-style power spectral density
// accumulator: a continuous complex input stream is chopped into
// half-overlapped, windowed segments, each segment's magnitude-squared
// FFT is taken, and the per-bin results are either summed or
// exponentially averaged across segments.
//
// A [Periodogram] is constructed with a fixed (forced-even) segment
// length N; [Periodogram.Accumulate] may be called with input of any
// length and internally tracks how much of the next half-segment has
// been seen. [Periodogram.Get] returns the DC-centered accumulator;
// [Periodogram.GetScaleFactor] returns the divisor that turns it into
// a normalized PSD estimate.
package periodogram
