// Package reveal computes which scroll-animated page sections have entered
// the viewport. An element counts as revealed once its top edge rises above
// viewportHeight minus a fixed threshold; after that it stays revealed for
// the rest of the page lifetime regardless of where it scrolls.
package reveal

import "sort"

// Threshold is the distance in CSS pixels from the bottom of the viewport
// an element's top edge must cross before it is revealed.
const Threshold = 150

// Tracker accumulates the revealed set across scroll observations. The set
// only grows; observation order does not matter for membership.
type Tracker struct {
	revealed map[int]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{revealed: make(map[int]struct{})}
}

// Seed marks the given indices as already revealed. Used to carry the set
// across stateless observations.
func (t *Tracker) Seed(indices []int) {
	for _, i := range indices {
		if i >= 0 {
			t.revealed[i] = struct{}{}
		}
	}
}

// Observe processes one scroll tick. tops[i] is the top offset of tracked
// element i relative to the viewport. O(len(tops)).
func (t *Tracker) Observe(viewportHeight float64, tops []float64) {
	for i, top := range tops {
		if top < viewportHeight-Threshold {
			t.revealed[i] = struct{}{}
		}
	}
}

// IsRevealed reports whether element i has ever been revealed.
func (t *Tracker) IsRevealed(i int) bool {
	_, ok := t.revealed[i]
	return ok
}

// Revealed returns the revealed indices in ascending order.
func (t *Tracker) Revealed() []int {
	out := make([]int, 0, len(t.revealed))
	for i := range t.revealed {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
