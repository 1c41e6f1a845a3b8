package partition

// All returns every partition of n in reverse lexicographic order, starting
// with [n] and ending with [1,...,1]. For n <= 0 it returns nil.
func All(n int) []Partition {
	if n <= 0 {
		return nil
	}
	var result []Partition
	var walk func(prefix []int, remaining, maxPart int)
	walk = func(prefix []int, remaining, maxPart int) {
		if remaining == 0 {
			p := make(Partition, len(prefix))
			copy(p, prefix)
			result = append(result, p)
			return
		}
		for part := min(remaining, maxPart); part >= 1; part-- {
			walk(append(prefix, part), remaining-part, part)
		}
	}
	walk(make([]int, 0, n), n, n)
	return result
}

// CycleTypes returns the cycle types of S_n, one per conjugacy class, in the
// same order as All(n).
func CycleTypes(n int) []CycleCounts {
	parts := All(n)
	types := make([]CycleCounts, len(parts))
	for i, p := range parts {
		types[i] = p.CycleCounts()
	}
	return types
}

// Count returns the number of partitions of n.
func Count(n int) int {
	if n < 0 {
		return 0
	}
	// p[k] counts partitions of k using parts up to the current size.
	p := make([]int, n+1)
	p[0] = 1
	for part := 1; part <= n; part++ {
		for k := part; k <= n; k++ {
			p[k] += p[k-part]
		}
	}
	return p[n]
}
