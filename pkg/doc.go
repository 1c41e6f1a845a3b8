// Package pkg provides the libraries behind snchar, a calculator for
// characters of the symmetric group S_n.
//
// # Overview
//
// For a partition λ of n and a permutation σ of a given cycle type, snchar
// computes two characters:
//
//   - χ_M^λ(σ): the number of λ-tabloids fixed by σ, the character of the
//     permutation module M^λ.
//   - χ_S^λ(σ): the irreducible Specht character, by the Murnaghan–Nakayama
//     rule over rim hooks.
//
// The pkg directory is organized into:
//
//  1. [partition] - Partitions, Young diagram shapes and cycle types
//  2. [perm] - Permutations and their cycle structure
//  3. [character] - Fixed tabloids, rim hooks, Murnaghan–Nakayama and tables
//  4. [pipeline] - Validated, cached computation for callers
//  5. [cache], [observability], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
//	partition + cycle counts
//	         ↓
//	    [pipeline] (validate, cache lookup)
//	         ↓
//	    [character] (χ_M by tabloid counting, χ_S by rim-hook removal)
//	         ↓
//	    text / JSON / table output
//
// # Quick Start
//
//	lambda, _ := partition.New(5, 3, 2)
//	counts, _ := partition.NewCycleCounts(3, 1, 0, 0, 1, 0, 0, 0, 0, 0)
//	pair, err := character.Compute(lambda, counts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pair.Module, pair.Irreducible) // 4 0
package pkg
