package character

import (
	"context"
	"errors"
	"slices"
	"testing"

	snerrors "github.com/matzehuels/snchar/pkg/errors"
	"github.com/matzehuels/snchar/pkg/partition"
	"github.com/matzehuels/snchar/pkg/perm"
)

func mustCompute(t *testing.T, lambda partition.Partition, counts partition.CycleCounts) Pair {
	t.Helper()
	pair, err := Compute(lambda, counts)
	if err != nil {
		t.Fatalf("Compute(%v, %v): %v", lambda, counts, err)
	}
	return pair
}

func TestComputeStandardRepresentation(t *testing.T) {
	tests := []struct {
		name   string
		lambda partition.Partition
		counts partition.CycleCounts
		want   Pair
	}{
		{"[2,1] at a 3-cycle", partition.Partition{2, 1}, partition.CycleCounts{0, 0, 1}, Pair{Module: 0, Irreducible: -1}},
		{"[2,1] at the identity", partition.Partition{2, 1}, partition.CycleCounts{3, 0, 0}, Pair{Module: 3, Irreducible: 2}},
		{"[2,1] at a transposition", partition.Partition{2, 1}, partition.CycleCounts{1, 1, 0}, Pair{Module: 1, Irreducible: 0}},
		{"[5,3,2] at 5 2 1^3", partition.Partition{5, 3, 2}, partition.CycleCounts{3, 1, 0, 0, 1, 0, 0, 0, 0, 0}, Pair{Module: 4, Irreducible: 0}},
		{"[5,3,2] at 2^5", partition.Partition{5, 3, 2}, partition.CycleCounts{0, 5, 0, 0, 0, 0, 0, 0, 0, 0}, Pair{Module: 0, Irreducible: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustCompute(t, tt.lambda, tt.counts); got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeS4Table(t *testing.T) {
	// Rows and columns in partition.All(4) order: 4, 31, 22, 211, 1111.
	wantS := [][]int{
		{1, 1, 1, 1, 1},
		{-1, 0, -1, 1, 3},
		{0, -1, 2, 0, 2},
		{1, 0, -1, -1, 3},
		{-1, 1, 1, -1, 1},
	}
	wantM := [][]int{
		{1, 1, 1, 1, 1},
		{0, 1, 0, 2, 4},
		{0, 0, 2, 2, 6},
		{0, 0, 0, 2, 12},
		{0, 0, 0, 0, 24},
	}

	for i, lambda := range partition.All(4) {
		for j, c := range partition.CycleTypes(4) {
			got := mustCompute(t, lambda, c)
			if got.Irreducible != wantS[i][j] {
				t.Errorf("χ_S^%v(%s) = %d, want %d", lambda, c.Notation(), got.Irreducible, wantS[i][j])
			}
			if got.Module != wantM[i][j] {
				t.Errorf("χ_M^%v(%s) = %d, want %d", lambda, c.Notation(), got.Module, wantM[i][j])
			}
		}
	}
}

func TestComputeRejectsMismatch(t *testing.T) {
	_, err := Compute(partition.Partition{2, 1}, partition.CycleCounts{4, 0, 0, 0})
	if !snerrors.Is(err, snerrors.ErrCodeSizeMismatch) {
		t.Errorf("Compute() error = %v, want %s", err, snerrors.ErrCodeSizeMismatch)
	}

	_, err = Compute(partition.Partition{1, 2}, partition.CycleCounts{3, 0, 0})
	if !snerrors.Is(err, snerrors.ErrCodeInvalidPartition) {
		t.Errorf("Compute() error = %v, want %s", err, snerrors.ErrCodeInvalidPartition)
	}

	_, err = Compute(partition.Partition{2, 1}, partition.CycleCounts{-1, 2, 0})
	if !snerrors.Is(err, snerrors.ErrCodeInvalidCycles) {
		t.Errorf("Compute() error = %v, want %s", err, snerrors.ErrCodeInvalidCycles)
	}
}

func TestTrivialPartition(t *testing.T) {
	for n := 1; n <= 8; n++ {
		lambda := partition.Partition{n}
		for _, c := range partition.CycleTypes(n) {
			got := mustCompute(t, lambda, c)
			if got.Module != 1 || got.Irreducible != 1 {
				t.Errorf("[%d] at %s = %+v, want both 1", n, c.Notation(), got)
			}
		}
	}
}

func TestSignRepresentation(t *testing.T) {
	for n := 1; n <= 8; n++ {
		lambda := partition.Partition{n}.Conjugate()
		for _, c := range partition.CycleTypes(n) {
			got := mustCompute(t, lambda, c)
			if got.Irreducible != c.Sign() {
				t.Errorf("χ_S^%v(%s) = %d, want sign %d", lambda, c.Notation(), got.Irreducible, c.Sign())
			}
		}
	}
}

func TestModuleNonNegative(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, lambda := range partition.All(n) {
			for _, c := range partition.CycleTypes(n) {
				if got := mustCompute(t, lambda, c); got.Module < 0 {
					t.Errorf("χ_M^%v(%s) = %d is negative", lambda, c.Notation(), got.Module)
				}
			}
		}
	}
}

// Σ_λ dim(S^λ) χ_S^λ(σ) is the character of the regular representation.
func TestRegularRepresentation(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for _, c := range partition.CycleTypes(n) {
			sum := 0
			for _, lambda := range partition.All(n) {
				sum += lambda.Dimension() * mustCompute(t, lambda, c).Irreducible
			}
			want := 0
			if c.IsIdentity() {
				want = perm.Factorial(n)
			}
			if sum != want {
				t.Errorf("n=%d, σ=%s: Σ dim·χ = %d, want %d", n, c.Notation(), sum, want)
			}
		}
	}
}

func TestOrthogonality(t *testing.T) {
	for n := 1; n <= 7; n++ {
		classes := partition.CycleTypes(n)
		parts := partition.All(n)
		chars := make([][]int, len(parts))
		for i, lambda := range parts {
			row, err := Row(lambda, classes)
			if err != nil {
				t.Fatal(err)
			}
			for _, pair := range row {
				chars[i] = append(chars[i], pair.Irreducible)
			}
		}

		// Columns: Σ_λ χ^λ(σ)² = z_σ.
		for j, c := range classes {
			sum := 0
			for i := range parts {
				sum += chars[i][j] * chars[i][j]
			}
			if sum != c.CentralizerOrder() {
				t.Errorf("n=%d, column %s: Σ χ² = %d, want %d", n, c.Notation(), sum, c.CentralizerOrder())
			}
		}

		// Rows: Σ_σ |C_σ| χ^λ(σ) χ^μ(σ) = n! δ_λμ.
		for a := range parts {
			for b := range parts {
				sum := 0
				for j, c := range classes {
					sum += c.ClassSize() * chars[a][j] * chars[b][j]
				}
				want := 0
				if a == b {
					want = perm.Factorial(n)
				}
				if sum != want {
					t.Errorf("n=%d, rows %v·%v = %d, want %d", n, parts[a], parts[b], sum, want)
				}
			}
		}
	}
}

func TestIrreducibleAtIdentityIsDimension(t *testing.T) {
	for n := 1; n <= 9; n++ {
		identity := make([]int, n)
		for i := range identity {
			identity[i] = 1
		}
		for _, lambda := range partition.All(n) {
			got, err := Irreducible(lambda, identity)
			if err != nil {
				t.Fatal(err)
			}
			if got != lambda.Dimension() {
				t.Errorf("χ_S^%v(1) = %d, want dimension %d", lambda, got, lambda.Dimension())
			}
		}
	}
}

// fixedTabloidsBruteForce labels every point with a row and counts labellings
// of the right row sizes that σ preserves.
func fixedTabloidsBruteForce(lambda partition.Partition, sigma []int) int {
	n := len(sigma)
	label := make([]int, n)
	count := 0
	var assign func(i int, capacity []int)
	assign = func(i int, capacity []int) {
		if i == n {
			for x := range sigma {
				if label[sigma[x]] != label[x] {
					return
				}
			}
			count++
			return
		}
		for row := range capacity {
			if capacity[row] == 0 {
				continue
			}
			capacity[row]--
			label[i] = row
			assign(i+1, capacity)
			capacity[row]++
		}
	}
	assign(0, slices.Clone([]int(lambda)))
	return count
}

func TestFixedTabloidsMatchesBruteForce(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, lambda := range partition.All(n) {
			for _, c := range partition.CycleTypes(n) {
				want := fixedTabloidsBruteForce(lambda, perm.FromCycleCounts(c))
				if got := FixedTabloids(lambda, c.Expand()); got != want {
					t.Errorf("χ_M^%v(%s) = %d, brute force gives %d", lambda, c.Notation(), got, want)
				}
			}
		}
	}
}

func TestCycleOrderInvariance(t *testing.T) {
	lambda := partition.Partition{3, 2, 1}
	cycles := []int{1, 2, 3}
	wantM := FixedTabloids(lambda, cycles)
	wantS, err := Irreducible(lambda, cycles)
	if err != nil {
		t.Fatal(err)
	}

	for _, order := range perm.Generate(len(cycles), 0) {
		permuted := make([]int, len(cycles))
		for i, j := range order {
			permuted[i] = cycles[j]
		}
		if got := FixedTabloids(lambda, permuted); got != wantM {
			t.Errorf("χ_M with cycles %v = %d, want %d", permuted, got, wantM)
		}
		got, err := Irreducible(lambda, permuted)
		if err != nil {
			t.Fatal(err)
		}
		if got != wantS {
			t.Errorf("χ_S with cycles %v = %d, want %d", permuted, got, wantS)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	lambda := partition.Partition{5, 3, 2}
	counts := partition.CycleCounts{3, 1, 0, 0, 1, 0, 0, 0, 0, 0}
	first := mustCompute(t, lambda, counts)
	for range 3 {
		if got := mustCompute(t, lambda, counts); got != first {
			t.Errorf("repeated Compute() = %+v, first call gave %+v", got, first)
		}
	}
}

func TestBuildTable(t *testing.T) {
	table, err := BuildTable(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Partitions) != 5 || len(table.Classes) != 5 {
		t.Fatalf("table is %dx%d, want 5x5", len(table.Partitions), len(table.Classes))
	}
	for i, lambda := range table.Partitions {
		if got := table.Dimension(i); got != lambda.Dimension() {
			t.Errorf("Dimension(%d) = %d, want %d", i, got, lambda.Dimension())
		}
	}
	if !slices.Equal(table.Irreducible[1], []int{-1, 0, -1, 1, 3}) {
		t.Errorf("row [3,1] = %v", table.Irreducible[1])
	}
	if !slices.Equal(table.Module[4], []int{0, 0, 0, 0, 24}) {
		t.Errorf("χ_M row [1,1,1,1] = %v", table.Module[4])
	}
}

func TestBuildTableCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := BuildTable(ctx, 5); !errors.Is(err, context.Canceled) {
		t.Errorf("BuildTable() error = %v, want context.Canceled", err)
	}
}

func TestBuildTableRejectsDegree(t *testing.T) {
	if _, err := BuildTable(context.Background(), 0); !snerrors.Is(err, snerrors.ErrCodeInvalidInput) {
		t.Errorf("BuildTable(0) error = %v", err)
	}
	if _, err := BuildTable(context.Background(), partition.MaxDegree+1); !snerrors.Is(err, snerrors.ErrCodeTooLarge) {
		t.Errorf("BuildTable(%d) error = %v", partition.MaxDegree+1, err)
	}
}
