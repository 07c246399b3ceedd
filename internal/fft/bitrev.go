package fft

// BitReverse permutes pts in place so that the sample at index i moves to
// the index whose low log2(len(pts)) bits are those of i reversed. Each pair
// is swapped exactly once, so applying it twice restores the input.
func BitReverse(pts []Complex) {
	n := len(pts)
	j := 0

	for i := 0; i < n-1; i++ {
		if i < j {
			pts[i], pts[j] = pts[j], pts[i]
		}

		k := n >> 1
		for k <= j {
			j -= k
			k >>= 1
		}

		j += k
	}
}
