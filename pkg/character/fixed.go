package character

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/snchar/pkg/partition"
)

// FixedTabloids returns χ_M^λ(σ), the number of λ-tabloids fixed by a
// permutation with the given cycle lengths.
//
// A tabloid is fixed exactly when each cycle lies inside a single row, so the
// count is the number of ways to assign every cycle to a row such that each
// row is filled exactly. The cycle lengths must sum to λ.N(); the order of
// cycles does not change the result.
func FixedTabloids(lambda partition.Partition, cycleLengths []int) int {
	t := &tabloidCounter{
		cycles: cycleLengths,
		memo:   make(map[string]int),
	}
	return t.count(0, slices.Clone([]int(lambda)))
}

// tabloidCounter assigns cycles to rows. Its memo table lives for one call.
type tabloidCounter struct {
	cycles []int
	memo   map[string]int
}

// count returns the number of ways to place cycles[i:] into rows with the
// given remaining capacities. capacity is never modified.
func (t *tabloidCounter) count(i int, capacity []int) int {
	if i == len(t.cycles) {
		for _, c := range capacity {
			if c != 0 {
				return 0
			}
		}
		return 1
	}

	key := capacityKey(i, capacity)
	if v, ok := t.memo[key]; ok {
		return v
	}

	length := t.cycles[i]
	total := 0
	for row, c := range capacity {
		if c < length {
			continue
		}
		next := slices.Clone(capacity)
		next[row] -= length
		total += t.count(i+1, next)
	}

	t.memo[key] = total
	return total
}

func capacityKey(i int, capacity []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(i))
	b.WriteByte('|')
	for j, c := range capacity {
		if j > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}
