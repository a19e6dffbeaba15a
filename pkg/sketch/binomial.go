package sketch

// Binomial returns the number of k-subsets of an n-set, n!/(k!(n-k)!).
// It returns 0 when k is outside [0, n]. The ratio is built as a running
// product so it stays finite long after n! overflows.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return c
}
