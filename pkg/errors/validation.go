package errors

// ValidatePartition checks that parts form an integer partition: at least one
// part, every part positive, parts non-increasing.
//
// The algorithmic core assumes this holds and never re-checks it.
func ValidatePartition(parts []int) error {
	if len(parts) == 0 {
		return New(ErrCodeInvalidPartition, "partition cannot be empty")
	}
	for i, p := range parts {
		if p <= 0 {
			return New(ErrCodeInvalidPartition, "part %d is %d, parts must be positive", i+1, p)
		}
		if i > 0 && p > parts[i-1] {
			return New(ErrCodeInvalidPartition, "parts must be non-increasing: %d follows %d", p, parts[i-1])
		}
	}
	return nil
}

// ValidateCycleCounts checks that counts is a well-formed cycle-count vector:
// non-empty and free of negative entries.
func ValidateCycleCounts(counts []int) error {
	if len(counts) == 0 {
		return New(ErrCodeInvalidCycles, "cycle counts cannot be empty")
	}
	for i, k := range counts {
		if k < 0 {
			return New(ErrCodeInvalidCycles, "count of %d-cycles is %d, counts must be nonnegative", i+1, k)
		}
	}
	return nil
}

// ValidateConsistent checks that a partition and a cycle-count vector describe
// the same n. The vector must have exactly sum(parts) entries and the cycles it
// encodes must cover exactly sum(parts) points.
func ValidateConsistent(parts, counts []int) error {
	n := 0
	for _, p := range parts {
		n += p
	}
	if len(counts) != n {
		return New(ErrCodeSizeMismatch, "got %d cycle counts for a partition of %d", len(counts), n)
	}
	total := 0
	for i, k := range counts {
		total += (i + 1) * k
	}
	if total != n {
		return New(ErrCodeSizeMismatch, "cycles cover %d points, partition covers %d", total, n)
	}
	return nil
}

// ValidateDegree rejects n outside [1, max].
func ValidateDegree(n, max int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "degree must be at least 1, got %d", n)
	}
	if n > max {
		return New(ErrCodeTooLarge, "degree %d exceeds the supported maximum of %d", n, max)
	}
	return nil
}
