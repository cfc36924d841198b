package dft

// GoodSize returns the smallest integer n >= m of the form 2^a * 3^b * 5^c * 7^d.
//
// The factor of 7 matters in practice: it is what lets good_size reach
// sample-rate families built around 44.1 kHz (44100 = 2^2*3^2*5^2*7^2)
// cleanly. The search is bounded above by the next power of two >= m,
// since a pure power of two is itself always a valid candidate.
func GoodSize(m int) int {
	if m <= 1 {
		return 1
	}

	upper := 1
	for upper < m {
		upper *= 2
	}

	best := upper
	for p2 := 1; p2 <= upper; p2 *= 2 {
		for p3 := p2; p3 <= upper; p3 *= 3 {
			for p5 := p3; p5 <= upper; p5 *= 5 {
				for p7 := p5; p7 <= upper; p7 *= 7 {
					if p7 >= m && p7 < best {
						best = p7
					}
				}
			}
		}
	}

	return best
}

// IsGoodSize reports whether n itself already factors as 2^a*3^b*5^c*7^d.
func IsGoodSize(n int) bool {
	if n < 1 {
		return false
	}
	for _, p := range [4]int{2, 3, 5, 7} {
		for n%p == 0 {
			n /= p
		}
	}
	return n == 1
}
