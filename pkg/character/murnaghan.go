package character

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/snchar/pkg/errors"
	"github.com/matzehuels/snchar/pkg/partition"
)

// Irreducible returns χ_S^λ(σ), the irreducible character of S_n indexed by λ
// at a permutation with the given cycle lengths, by the Murnaghan–Nakayama
// rule.
//
// The cycle lengths must sum to λ.N(); this is not checked here. An error is
// only returned if the rim-hook enumeration reports the same hook twice for
// one shape, which indicates a defect rather than bad input.
func Irreducible(lambda partition.Partition, cycleLengths []int) (int, error) {
	m := &murnaghanNakayama{
		cycles: cycleLengths,
		memo:   make(map[string]int),
	}
	return m.eval(lambda.Shape(), 0)
}

// murnaghanNakayama evaluates the recursion for one fixed cycle sequence.
// The remaining sequence is always a suffix cycles[i:], so (shape, i) keys
// the memo table.
type murnaghanNakayama struct {
	cycles []int
	memo   map[string]int
}

func (m *murnaghanNakayama) eval(shape partition.Shape, i int) (int, error) {
	if i == len(m.cycles) {
		return 1, nil
	}

	key := shape.Key() + "|" + strconv.Itoa(i)
	if v, ok := m.memo[key]; ok {
		return v, nil
	}

	hooks := RimHooks(shape, m.cycles[i])
	if err := checkDistinct(shape, hooks); err != nil {
		return 0, err
	}

	total := 0
	for _, h := range hooks {
		v, err := m.eval(h.Shape, i+1)
		if err != nil {
			return 0, err
		}
		total += h.Sign() * v
	}

	m.memo[key] = total
	return total, nil
}

// checkDistinct fails if two hooks remove the same cells. Each cell set is a
// separate term of the Murnaghan–Nakayama sum, so a repeat would be counted twice.
func checkDistinct(shape partition.Shape, hooks []RimHook) error {
	if len(hooks) < 2 {
		return nil
	}
	seen := make(map[string]bool, len(hooks))
	for _, h := range hooks {
		key := fmt.Sprint(h.Cells)
		if seen[key] {
			return errors.New(errors.ErrCodeInternal,
				"rim hook %v of shape %v enumerated twice", h.Cells, []int(shape))
		}
		seen[key] = true
	}
	return nil
}
