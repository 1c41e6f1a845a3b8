package character

import (
	"slices"
	"testing"

	"github.com/matzehuels/snchar/pkg/partition"
)

func TestRimHooksEdgeCases(t *testing.T) {
	if hooks := RimHooks(partition.NewShape(), 1); len(hooks) != 0 {
		t.Errorf("empty shape should have no hooks, got %v", hooks)
	}
	if hooks := RimHooks(partition.NewShape(2, 1), 4); len(hooks) != 0 {
		t.Errorf("hook longer than the diagram should not exist, got %v", hooks)
	}
	if hooks := RimHooks(partition.NewShape(2, 1), 0); len(hooks) != 0 {
		t.Errorf("zero-length hook should not exist, got %v", hooks)
	}
	if hooks := RimHooks(partition.NewShape(2, 1), 2); len(hooks) != 0 {
		t.Errorf("[2,1] has no hook of length 2, got %v", hooks)
	}
}

func TestRimHooksWholeDiagram(t *testing.T) {
	// The only 3-hook of [2,1] is the diagram itself, passing through (0,0)
	// which has neighbours both to the right and below.
	hooks := RimHooks(partition.NewShape(2, 1), 3)
	if len(hooks) != 1 {
		t.Fatalf("expected 1 hook, got %d: %v", len(hooks), hooks)
	}
	h := hooks[0]
	if !h.Shape.Empty() {
		t.Errorf("residual shape = %v, want empty", h.Shape)
	}
	if h.Height != 1 {
		t.Errorf("height = %d, want 1", h.Height)
	}
	want := []Cell{{0, 1}, {0, 0}, {1, 0}}
	if !slices.Equal(h.Cells, want) {
		t.Errorf("cells = %v, want %v", h.Cells, want)
	}
}

func TestRimHooksSquare(t *testing.T) {
	hooks := RimHooks(partition.NewShape(2, 2), 2)
	if len(hooks) != 2 {
		t.Fatalf("expected 2 hooks, got %d: %v", len(hooks), hooks)
	}
	want := []struct {
		shape  partition.Shape
		height int
	}{
		{partition.Shape{1, 1}, 1},
		{partition.Shape{2}, 0},
	}
	for i, w := range want {
		if !hooks[i].Shape.Equal(w.shape) || hooks[i].Height != w.height {
			t.Errorf("hook %d = (%v, %d), want (%v, %d)", i, hooks[i].Shape, hooks[i].Height, w.shape, w.height)
		}
	}
}

func TestRimHooksThreeByThree(t *testing.T) {
	hooks := RimHooks(partition.NewShape(3, 3, 3), 3)
	want := []struct {
		shape  partition.Shape
		height int
	}{
		{partition.Shape{2, 2, 2}, 2},
		{partition.Shape{3, 2, 1}, 1},
		{partition.Shape{3, 3}, 0},
	}
	if len(hooks) != len(want) {
		t.Fatalf("expected %d hooks, got %d: %v", len(want), len(hooks), hooks)
	}
	for i, w := range want {
		if !hooks[i].Shape.Equal(w.shape) || hooks[i].Height != w.height {
			t.Errorf("hook %d = (%v, %d), want (%v, %d)", i, hooks[i].Shape, hooks[i].Height, w.shape, w.height)
		}
	}
}

// The rim hooks of length L correspond one-to-one to the cells of hook length L.
func TestRimHooksMatchHookLengths(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for _, lambda := range partition.All(n) {
			want := make(map[int]int)
			for _, row := range lambda.HookLengths() {
				for _, h := range row {
					want[h]++
				}
			}
			for length := 1; length <= n; length++ {
				hooks := RimHooks(lambda.Shape(), length)
				if len(hooks) != want[length] {
					t.Errorf("%v: %d hooks of length %d, want %d", lambda, len(hooks), length, want[length])
				}
				for _, h := range hooks {
					if h.Shape.Size() != n-length {
						t.Errorf("%v: residual %v has %d cells, want %d", lambda, h.Shape, h.Shape.Size(), n-length)
					}
					if len(h.Cells) != length {
						t.Errorf("%v: hook removes %d cells, want %d", lambda, len(h.Cells), length)
					}
				}
			}
		}
	}
}

func TestRimHooksResidualIsCanonical(t *testing.T) {
	for _, h := range RimHooks(partition.NewShape(4, 2, 1), 3) {
		if !h.Shape.Equal(partition.NewShape(h.Shape...)) {
			t.Errorf("residual %v is not canonical", h.Shape)
		}
	}
}

func TestRimHookSign(t *testing.T) {
	if (RimHook{Height: 0}).Sign() != 1 {
		t.Error("height 0 should have sign 1")
	}
	if (RimHook{Height: 1}).Sign() != -1 {
		t.Error("height 1 should have sign -1")
	}
	if (RimHook{Height: 2}).Sign() != 1 {
		t.Error("height 2 should have sign 1")
	}
}

func TestCheckDistinct(t *testing.T) {
	h := RimHook{Shape: partition.NewShape(1), Height: 0, Cells: []Cell{{0, 1}}}
	if err := checkDistinct(partition.NewShape(2), []RimHook{h}); err != nil {
		t.Errorf("single hook: %v", err)
	}
	if err := checkDistinct(partition.NewShape(2), []RimHook{h, h}); err == nil {
		t.Error("repeated hook should be reported")
	}
}
