package prepost

// combinations calls do with every r element combination of 0..n-1, in
// lexicographic order, until do returns false. The slice passed to do is
// reused between calls.
func combinations(n, r int, do func([]int) bool) {
	if r <= 0 || r > n {
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !do(idx) {
			return
		}
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
