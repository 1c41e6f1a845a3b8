package partition

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Shape is a Young diagram given by its row lengths.
//
// Shapes built with [NewShape] are canonical: rows sorted descending, zero
// rows dropped. Memo tables key shapes by [Shape.Key], so every construction
// site must go through NewShape.
type Shape []int

// NewShape returns the canonical shape with the given row lengths.
// Negative and zero rows are dropped; the input is not modified.
func NewShape(rows ...int) Shape {
	s := make(Shape, 0, len(rows))
	for _, r := range rows {
		if r > 0 {
			s = append(s, r)
		}
	}
	slices.SortFunc(s, func(a, b int) int { return cmp.Compare(b, a) })
	return s
}

// Size returns the number of cells.
func (s Shape) Size() int {
	n := 0
	for _, r := range s {
		n += r
	}
	return n
}

// Empty reports whether the diagram has no cells.
func (s Shape) Empty() bool { return len(s) == 0 }

// Key returns a string that is equal for equal shapes, e.g. "3.2.2".
func (s Shape) Key() string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(r))
	}
	return b.String()
}

// Equal reports whether s and t have the same rows.
func (s Shape) Equal(t Shape) bool { return slices.Equal(s, t) }
