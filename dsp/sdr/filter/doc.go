// Package filter synthesizes a windowed FIR band-pass filter from a
// passband specification and applies it to streaming complex input via
// overlap-save in the frequency domain.
//
// Construction (see [New]) derives a tap count from the requested
// transition width and stopband attenuation (or accepts an explicit tap
// count), windows the ideal sinc prototype, and forward-transforms the
// zero-padded result into a frequency-domain image stored for the
// lifetime of the [Filter]. [NewFromImage] instead accepts a
// pre-transformed image directly, skipping synthesis entirely — useful
// when the caller already has a prototype response. [Image] synthesizes
// a spectral multiply image from a passband spec without overlap-save
// state; the resample package builds its anti-alias stage that way.
//
// [Filter.Apply] consumes and emits buffers of a fixed size B fixed at
// construction; it is stateful across calls (it keeps the overlap-save
// save-buffer) and must be driven in input order by a single owner.
package filter
