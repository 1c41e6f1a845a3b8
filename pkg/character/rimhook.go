package character

import (
	"slices"

	"github.com/matzehuels/snchar/pkg/partition"
)

// Cell is a box of a Young diagram, 0-indexed from the top-left corner.
type Cell struct {
	Row, Col int
}

// RimHook is a connected border strip removable from a Young diagram.
type RimHook struct {
	// Shape is the canonical diagram left after removing the hook.
	Shape partition.Shape
	// Height is the number of rows the hook touches, minus one.
	Height int
	// Cells lists the removed cells from the top-right end to the bottom-left end.
	Cells []Cell
}

// Sign returns (-1)^Height.
func (h RimHook) Sign() int {
	if h.Height%2 == 0 {
		return 1
	}
	return -1
}

// diagram is the cell set of a shape. Row r holds columns 0..rows[r]-1.
type diagram struct {
	rows []int
}

func (d diagram) has(c Cell) bool {
	return c.Row >= 0 && c.Row < len(d.rows) && c.Col >= 0 && c.Col < d.rows[c.Row]
}

// onRim reports whether c is a diagram cell without a south-east neighbour.
// Border strips consist of exactly these cells.
func (d diagram) onRim(c Cell) bool {
	return d.has(c) && !d.has(Cell{c.Row + 1, c.Col + 1})
}

// RimHooks returns every rim hook of the given length in shape, together with
// the residual shape and height of each.
//
// Paths start at the last cell of every row and grow one rim cell at a time,
// either to the left or downwards. A complete path is kept only when the cells
// left behind form a Young diagram: every row a contiguous run from column 0,
// rows non-increasing, and exactly Size()-length cells in total.
//
// An empty shape, or a length with no matching hook, yields no hooks.
func RimHooks(shape partition.Shape, length int) []RimHook {
	if shape.Empty() || length <= 0 || length > shape.Size() {
		return nil
	}
	d := diagram{rows: shape}

	var hooks []RimHook
	var extend func(path []Cell)
	extend = func(path []Cell) {
		if len(path) == length {
			if h, ok := d.remove(path); ok {
				hooks = append(hooks, h)
			}
			return
		}
		last := path[len(path)-1]
		// Paths only move left or down, so no cell is visited twice.
		for _, next := range []Cell{{last.Row, last.Col - 1}, {last.Row + 1, last.Col}} {
			if d.onRim(next) {
				extend(append(slices.Clip(path), next))
			}
		}
	}

	for r, n := range d.rows {
		start := Cell{r, n - 1}
		if d.onRim(start) {
			extend([]Cell{start})
		}
	}
	return hooks
}

// remove deletes path from the diagram and reports whether the result is a
// Young diagram.
func (d diagram) remove(path []Cell) (RimHook, bool) {
	removed := make([]int, len(d.rows))
	rightmost := make([]int, len(d.rows))
	for i := range rightmost {
		rightmost[i] = -1
	}
	for _, c := range path {
		removed[c.Row]++
		rightmost[c.Row] = max(rightmost[c.Row], c.Col)
	}

	residual := make([]int, len(d.rows))
	touched, total := 0, 0
	for r, n := range d.rows {
		if removed[r] > 0 {
			touched++
			// The removed cells must be the tail of the row.
			if rightmost[r] != n-1 {
				return RimHook{}, false
			}
		}
		residual[r] = n - removed[r]
		if r > 0 && residual[r] > residual[r-1] {
			return RimHook{}, false
		}
		total += residual[r]
	}
	size := 0
	for _, n := range d.rows {
		size += n
	}
	if total != size-len(path) {
		return RimHook{}, false
	}

	return RimHook{
		Shape:  partition.NewShape(residual...),
		Height: touched - 1,
		Cells:  slices.Clone(path),
	}, true
}
