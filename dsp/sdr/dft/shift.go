package dft

// Shift reorders a zero-bin-first spectrum (in) into DC-centered order
// (out): for even N, bin k moves to (k + N/2) mod N; for odd N, bin k
// moves to (k + (N-1)/2) mod N. len(in) must equal len(out). in and out
// may alias.
func Shift(out, in []complex128) error {
	return permute(out, in, shiftAmount(len(in)), "shift")
}

// Ishift is the inverse of Shift: bin k moves to (k + (N+1)/2) mod N for
// odd N, identical to Shift for even N. len(in) must equal len(out). in
// and out may alias.
func Ishift(out, in []complex128) error {
	return permute(out, in, ishiftAmount(len(in)), "ishift")
}

func shiftAmount(n int) int {
	if n%2 == 0 {
		return n / 2
	}
	return (n - 1) / 2
}

func ishiftAmount(n int) int {
	if n%2 == 0 {
		return n / 2
	}
	return (n + 1) / 2
}

// permute writes out[(k+amt)%n] = in[k] for all k, tolerating in and out
// sharing a backing array by routing through scratch when they do.
func permute(out, in []complex128, amt int, op string) error {
	n := len(in)
	if len(out) != n {
		return unmatchedSizes(op, n, len(out))
	}
	if n == 0 {
		return nil
	}

	src := in
	if aliases(out, in) {
		src = make([]complex128, n)
		copy(src, in)
	}

	for k, v := range src {
		out[(k+amt)%n] = v
	}

	return nil
}

func aliases(a, b []complex128) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
