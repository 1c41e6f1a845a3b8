package character

import (
	"github.com/matzehuels/snchar/pkg/partition"
)

// Pair holds both character values for one partition and cycle type.
type Pair struct {
	Module      int `json:"chi_m"` // χ_M: fixed tabloids, never negative
	Irreducible int `json:"chi_s"` // χ_S: may be negative
}

// Compute validates that lambda and counts describe the same n and returns
// χ_M^λ(σ) and χ_S^λ(σ) for σ of cycle type counts.
//
// No partial result is returned: on error the Pair is zero.
func Compute(lambda partition.Partition, counts partition.CycleCounts) (Pair, error) {
	if err := partition.Validate(lambda, counts); err != nil {
		return Pair{}, err
	}

	cycles := counts.Expand()
	chiS, err := Irreducible(lambda, cycles)
	if err != nil {
		return Pair{}, err
	}
	return Pair{
		Module:      FixedTabloids(lambda, cycles),
		Irreducible: chiS,
	}, nil
}
