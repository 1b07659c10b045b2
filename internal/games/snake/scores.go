package snake

import "slices"

// ScoreHistory keeps distinct scores sorted from best to worst.
type ScoreHistory struct {
	values []int
}

// Record inserts score unless it is already present.
// Returns true if the history changed.
func (h *ScoreHistory) Record(score int) bool {
	i, found := slices.BinarySearchFunc(h.values, score, func(have, want int) int {
		return want - have // descending order
	})
	if found {
		return false
	}
	h.values = slices.Insert(h.values, i, score)
	return true
}

// Best returns the highest recorded score, or 0 if none.
func (h *ScoreHistory) Best() int {
	if len(h.values) == 0 {
		return 0
	}
	return h.values[0]
}

// Values returns a copy of all scores, best first.
func (h *ScoreHistory) Values() []int {
	return slices.Clone(h.values)
}
