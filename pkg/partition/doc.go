// Package partition provides integer partitions, Young diagram shapes and
// cycle types of the symmetric group S_n.
//
// # Overview
//
// Partitions of n index two things at once: the Young diagrams whose row
// lengths they list, and the conjugacy classes of S_n through cycle types.
// This package holds the value types shared by the character computations:
//
//   - [Partition]: a validated, non-increasing sequence of positive parts
//   - [Shape]: a canonical Young diagram used as a memoization key
//   - [CycleCounts]: a cycle-count vector, expanded with [CycleCounts.Expand]
//
// # Canonical Shapes
//
// Shapes are always stored sorted descending with zero rows dropped, so two
// diagrams built along different paths compare equal and share a [Shape.Key]:
//
//	a := partition.NewShape(2, 0, 3)
//	b := partition.NewShape(3, 2)
//	a.Key() == b.Key() // true
//
// # Enumeration
//
// [All] lists the partitions of n in reverse lexicographic order and
// [CycleTypes] lists the conjugacy classes of S_n in the same order. Both
// drive the character table.
//
// # Limits
//
// [MaxDegree] bounds n so that tabloid counts and class sizes fit in an int.
package partition
