// Package resample implements a rational sample-rate converter built
// entirely in the frequency domain: a forward DFT of the input block,
// an anti-alias spectral multiply, a spectrum copy into a differently
// sized transform, and an inverse DFT.
//
// A [Resampler] is constructed for a fixed input rate, output rate,
// and processing time span; it derives the upsample/decimate factors
// U and D (after removing their gcd) and the input/output block sizes
// Lx and Ly such that the per-bin frequency spacing Fin/Lx equals
// Fout/Ly, which is what makes the spectrum copy in [Resampler.Apply]
// exact rather than approximate.
package resample
