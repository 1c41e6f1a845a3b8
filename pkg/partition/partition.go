package partition

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/snchar/pkg/errors"
	"github.com/matzehuels/snchar/pkg/perm"
)

// MaxDegree is the largest n accepted at the boundary. 20! is the largest
// factorial that fits in an int64.
const MaxDegree = 20

// Partition is a non-increasing sequence of positive integers.
// Values returned by [New] are never modified.
type Partition []int

// New validates parts and returns them as a Partition.
// The input slice is copied.
func New(parts ...int) (Partition, error) {
	if err := errors.ValidatePartition(parts); err != nil {
		return nil, err
	}
	p := Partition(slices.Clone(parts))
	if err := errors.ValidateDegree(p.N(), MaxDegree); err != nil {
		return nil, err
	}
	return p, nil
}

// N returns the number partitioned, i.e. the number of cells of the diagram.
func (p Partition) N() int {
	n := 0
	for _, r := range p {
		n += r
	}
	return n
}

// Rows returns the number of parts.
func (p Partition) Rows() int { return len(p) }

// Shape returns the Young diagram of p.
func (p Partition) Shape() Shape { return NewShape(p...) }

// String formats p as a comma-separated list, e.g. "5,3,2".
func (p Partition) String() string {
	parts := make([]string, len(p))
	for i, r := range p {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ",")
}

// Conjugate returns the partition whose rows are the columns of p.
func (p Partition) Conjugate() Partition {
	if len(p) == 0 {
		return Partition{}
	}
	c := make(Partition, p[0])
	for j := range c {
		for _, r := range p {
			if r > j {
				c[j]++
			}
		}
	}
	return c
}

// HookLengths returns the hook length of every cell, row by row.
// The hook of (r, c) is the cell itself, the cells to its right and the cells below it.
func (p Partition) HookLengths() [][]int {
	cols := p.Conjugate()
	hooks := make([][]int, len(p))
	for r, length := range p {
		hooks[r] = make([]int, length)
		for c := range length {
			hooks[r][c] = (length - c - 1) + (cols[c] - r - 1) + 1
		}
	}
	return hooks
}

// Dimension returns the dimension of the Specht module of p by the hook-length formula.
func (p Partition) Dimension() int {
	// Every partial product of hooks divides n!, so the quotient stays exact.
	d := perm.Factorial(p.N())
	for _, row := range p.HookLengths() {
		for _, h := range row {
			d /= h
		}
	}
	return d
}

// CycleCounts returns the cycle type whose cycle lengths are the parts of p.
func (p Partition) CycleCounts() CycleCounts {
	counts := make(CycleCounts, p.N())
	for _, r := range p {
		counts[r-1]++
	}
	return counts
}
