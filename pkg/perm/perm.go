package perm

import (
	"slices"

	"github.com/matzehuels/snchar/pkg/errors"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for initializing permutation arrays or creating index sequences.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Note that factorials grow extremely fast: 21! exceeds int64.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Generate returns permutations of [0, 1, ..., n-1] using Heap's algorithm.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Generate handles edge cases gracefully:
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]] (one single-element permutation)
func Generate(n, limit int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	if n == 1 {
		return [][]int{{0}}
	}

	perm := Seq(n)
	state := make([]int, n)

	capacity := limit
	if capacity <= 0 || n <= 10 {
		capacity = Factorial(min(n, 10))
	}
	result := make([][]int, 0, capacity)
	result = append(result, slices.Clone(perm))

	for i := 0; i < n && (limit <= 0 || len(result) < limit); {
		if state[i] < i {
			if i&1 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[state[i]], perm[i] = perm[i], perm[state[i]]
			}
			result = append(result, slices.Clone(perm))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}

// Validate checks that p is a permutation of {0, ..., len(p)-1} in one-line notation.
func Validate(p []int) error {
	if len(p) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "permutation cannot be empty")
	}
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return errors.New(errors.ErrCodeInvalidInput, "image %d of %d is outside 0..%d", v, i, len(p)-1)
		}
		if seen[v] {
			return errors.New(errors.ErrCodeInvalidInput, "%d appears twice, not a permutation", v)
		}
		seen[v] = true
	}
	return nil
}

// CycleCounts returns the cycle-count vector of p: entry i is the number of
// cycles of length i+1 in the disjoint-cycle decomposition of p.
func CycleCounts(p []int) ([]int, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	counts := make([]int, len(p))
	visited := make([]bool, len(p))
	for start := range p {
		if visited[start] {
			continue
		}
		length := 0
		for i := start; !visited[i]; i = p[i] {
			visited[i] = true
			length++
		}
		counts[length-1]++
	}
	return counts, nil
}

// FromCycleCounts builds the permutation whose cycles are consecutive runs of
// points, shortest cycles first. For counts [1, 1] it returns [0, 2, 1].
//
// counts must be nonnegative and cover exactly len(counts) points.
func FromCycleCounts(counts []int) []int {
	p := make([]int, 0, len(counts))
	next := 0
	for i, k := range counts {
		length := i + 1
		for range k {
			for j := range length {
				p = append(p, next+(j+1)%length)
			}
			next += length
		}
	}
	return p
}
