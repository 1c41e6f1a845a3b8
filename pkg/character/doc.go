// Package character computes character values of the symmetric group S_n.
//
// # Overview
//
// Two characters are computed for a partition λ of n and a permutation σ
// given by its cycle type:
//
//   - χ_M^λ(σ) ([FixedTabloids]): the character of the permutation module M^λ,
//     i.e. the number of λ-tabloids fixed by σ
//   - χ_S^λ(σ) ([Irreducible]): the character of the Specht module S^λ,
//     computed with the Murnaghan–Nakayama rule
//
// [Compute] validates a partition and a cycle-count vector and returns both
// values; [BuildTable] evaluates every (partition, class) pair of S_n.
//
// # Tabloid Fixed Points
//
// A tabloid is fixed by σ exactly when every cycle of σ lies inside one row.
// [FixedTabloids] assigns cycles to rows by backtracking over remaining row
// capacities and counts assignments that fill every row exactly.
//
// # Murnaghan–Nakayama
//
// The rule removes one rim hook per cycle:
//
//	χ^λ(c_1, c_2, ...) = Σ (-1)^height(h) · χ^{λ∖h}(c_2, ...)
//
// where h ranges over the rim hooks of length c_1 returned by [RimHooks].
//
// # Memoization
//
// Both recursions memoize sub-results in maps owned by a single call. Nothing
// is shared between calls, so repeated and concurrent calls are independent.
package character
