package partition

import (
	"strconv"
	"strings"

	"github.com/matzehuels/snchar/pkg/errors"
	"github.com/matzehuels/snchar/pkg/perm"
)

// CycleCounts is a cycle-count vector: entry i is the number of cycles of
// length i+1. A vector for S_n has exactly n entries.
type CycleCounts []int

// NewCycleCounts validates counts and returns them as a CycleCounts.
// The cycles must cover exactly len(counts) points. The input slice is copied.
func NewCycleCounts(counts ...int) (CycleCounts, error) {
	if err := errors.ValidateCycleCounts(counts); err != nil {
		return nil, err
	}
	if err := errors.ValidateDegree(len(counts), MaxDegree); err != nil {
		return nil, err
	}
	c := make(CycleCounts, len(counts))
	copy(c, counts)
	if c.Points() != len(c) {
		return nil, errors.New(errors.ErrCodeSizeMismatch,
			"cycles cover %d points, vector has %d entries", c.Points(), len(c))
	}
	return c, nil
}

// Validate checks that p is a partition, that c is a cycle-count vector and
// that both describe the same n, within MaxDegree.
func Validate(p Partition, c CycleCounts) error {
	if err := errors.ValidatePartition(p); err != nil {
		return err
	}
	if err := errors.ValidateCycleCounts(c); err != nil {
		return err
	}
	if err := errors.ValidateConsistent(p, c); err != nil {
		return err
	}
	return errors.ValidateDegree(p.N(), MaxDegree)
}

// Expand returns the cycle lengths in ascending order, length i+1 repeated c[i] times.
func (c CycleCounts) Expand() []int {
	lengths := make([]int, 0, c.Cycles())
	for i, k := range c {
		for range k {
			lengths = append(lengths, i+1)
		}
	}
	return lengths
}

// Points returns the number of points moved or fixed by the cycles.
func (c CycleCounts) Points() int {
	n := 0
	for i, k := range c {
		n += (i + 1) * k
	}
	return n
}

// Cycles returns the total number of cycles, fixed points included.
func (c CycleCounts) Cycles() int {
	n := 0
	for _, k := range c {
		n += k
	}
	return n
}

// Sign returns the sign of a permutation of this cycle type: (-1)^(n - cycles).
func (c CycleCounts) Sign() int {
	if (c.Points()-c.Cycles())%2 == 0 {
		return 1
	}
	return -1
}

// IsIdentity reports whether every cycle is a fixed point.
func (c CycleCounts) IsIdentity() bool {
	return c.Cycles() == c.Points()
}

// CentralizerOrder returns z = Π i^{m_i} · m_i!, the order of the centralizer
// of a permutation with m_i cycles of length i.
func (c CycleCounts) CentralizerOrder() int {
	z := 1
	for i, k := range c {
		for range k {
			z *= i + 1
		}
		z *= perm.Factorial(k)
	}
	return z
}

// ClassSize returns the number of permutations of this cycle type, n!/z.
func (c CycleCounts) ClassSize() int {
	return perm.Factorial(c.Points()) / c.CentralizerOrder()
}

// Partition returns the cycle lengths as a partition, longest first.
func (c CycleCounts) Partition() Partition {
	lengths := c.Expand()
	p := make(Partition, len(lengths))
	for i, l := range lengths {
		p[len(lengths)-1-i] = l
	}
	return p
}

// String formats c as a comma-separated vector, e.g. "3,1,0,0,1,0,0,0,0,0".
func (c CycleCounts) String() string {
	parts := make([]string, len(c))
	for i, k := range c {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ",")
}

// Notation formats the cycle type in exponent notation, longest cycles first,
// e.g. "5 2 1^3".
func (c CycleCounts) Notation() string {
	var parts []string
	for i := len(c) - 1; i >= 0; i-- {
		switch k := c[i]; {
		case k == 1:
			parts = append(parts, strconv.Itoa(i+1))
		case k > 1:
			parts = append(parts, strconv.Itoa(i+1)+"^"+strconv.Itoa(k))
		}
	}
	return strings.Join(parts, " ")
}
