package sumgrid

// Outcome classifies a selection's sum against the active target.
type Outcome int

const (
	// OutcomeNone means nothing contributes to the sum; no transition.
	OutcomeNone Outcome = iota
	// OutcomePartial means 0 < sum < target; selection persists.
	OutcomePartial
	// OutcomeMatch means sum == target; the selection clears and scores.
	OutcomeMatch
	// OutcomeOvershoot means sum > target; the selection is rejected.
	OutcomeOvershoot
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePartial:
		return "partial"
	case OutcomeMatch:
		return "match"
	case OutcomeOvershoot:
		return "overshoot"
	default:
		return "unknown"
	}
}

// Selection is an ordered set of block ids. It holds ids only, never
// block pointers: an id whose block has left the grid simply stops
// contributing to the sum.
type Selection struct {
	order  []int
	member map[int]bool
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{member: make(map[int]bool)}
}

// Toggle flips membership of id and reports whether it is now selected.
func (s *Selection) Toggle(id int) (selected bool) {
	if s.member[id] {
		delete(s.member, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.member[id] = true
	s.order = append(s.order, id)
	return true
}

// Has reports whether id is currently selected.
func (s *Selection) Has(id int) bool {
	return s.member[id]
}

// Clear removes all ids from the selection.
func (s *Selection) Clear() {
	s.order = s.order[:0]
	for id := range s.member {
		delete(s.member, id)
	}
}

// IDs returns the selected ids in insertion order.
func (s *Selection) IDs() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.order)
}

// Evaluate computes the sum of the selected blocks still present in the
// grid and classifies it against target. Ids whose blocks have vanished
// contribute zero rather than failing.
func Evaluate(g *Grid, sel *Selection, target int) (sum int, out Outcome) {
	for _, id := range sel.IDs() {
		if b := g.BlockByID(id); b != nil {
			sum += b.Value
		}
	}

	switch {
	case sum == 0:
		return sum, OutcomeNone
	case sum == target:
		return sum, OutcomeMatch
	case sum > target:
		return sum, OutcomeOvershoot
	default:
		return sum, OutcomePartial
	}
}
