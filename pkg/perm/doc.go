// Package perm provides permutation helpers for the symmetric group S_n.
//
// # Overview
//
// Characters of S_n are class functions: they only depend on the cycle type
// of a permutation. This package bridges concrete permutations and cycle
// types:
//
//   - [CycleCounts]: the cycle-count vector of a permutation in one-line notation
//   - [FromCycleCounts]: a canonical permutation with a given cycle type
//   - [Generate]: Heap's-algorithm enumeration, used to brute-force check
//     counting results on small n
//   - [Factorial]: helper for combinatorial calculations
//
// # One-line Notation
//
// A permutation of {0, ..., n-1} is stored as a slice p where p[i] is the
// image of i. [Validate] checks that a slice is a bijection:
//
//	p := []int{1, 2, 0, 4, 3}      // (0 1 2)(3 4)
//	counts, _ := perm.CycleCounts(p)
//	// counts == [0 1 1 0 0]: one 2-cycle and one 3-cycle
//
// # Permutation Generation
//
// For small sets, use [Generate] for efficient permutation enumeration:
//
//	perms := perm.Generate(4, 0)   // all 24 permutations of 4 elements
//	perms := perm.Generate(10, 100) // first 100 of 10! permutations
package perm
