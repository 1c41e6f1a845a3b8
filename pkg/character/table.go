package character

import (
	"context"

	"github.com/matzehuels/snchar/pkg/errors"
	"github.com/matzehuels/snchar/pkg/partition"
)

// Table holds χ_S and χ_M for every partition and conjugacy class of S_n.
// Row i belongs to Partitions[i], column j to Classes[j].
type Table struct {
	N           int                     `json:"n"`
	Partitions  []partition.Partition   `json:"partitions"`
	Classes     []partition.CycleCounts `json:"classes"`
	Irreducible [][]int                 `json:"chi_s"`
	Module      [][]int                 `json:"chi_m"`
}

// BuildTable computes the full character table of S_n. It checks ctx between
// rows and returns ctx.Err() once cancelled.
func BuildTable(ctx context.Context, n int) (*Table, error) {
	if err := errors.ValidateDegree(n, partition.MaxDegree); err != nil {
		return nil, err
	}

	t := &Table{
		N:          n,
		Partitions: partition.All(n),
		Classes:    partition.CycleTypes(n),
	}
	t.Irreducible = make([][]int, len(t.Partitions))
	t.Module = make([][]int, len(t.Partitions))

	for i, lambda := range t.Partitions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := Row(lambda, t.Classes)
		if err != nil {
			return nil, err
		}
		t.Irreducible[i] = make([]int, len(row))
		t.Module[i] = make([]int, len(row))
		for j, pair := range row {
			t.Irreducible[i][j] = pair.Irreducible
			t.Module[i][j] = pair.Module
		}
	}
	return t, nil
}

// Row computes the characters of lambda at every class in classes.
func Row(lambda partition.Partition, classes []partition.CycleCounts) ([]Pair, error) {
	row := make([]Pair, len(classes))
	for j, c := range classes {
		pair, err := Compute(lambda, c)
		if err != nil {
			return nil, err
		}
		row[j] = pair
	}
	return row, nil
}

// Dimension returns χ_S at the identity, i.e. the dimension of S^λ.
// It agrees with [partition.Partition.Dimension].
func (t *Table) Dimension(i int) int {
	for j, c := range t.Classes {
		if c.IsIdentity() {
			return t.Irreducible[i][j]
		}
	}
	return 0
}
