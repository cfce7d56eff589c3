package model

const (
	historySize = 5
	// cycleWindow is how many past generations a repeat is looked for in,
	// which catches still lifes and oscillators of period up to 3
	cycleWindow = 3
)

// History keeps recent grid hashes for stagnation detection
type History struct {
	hashes []string
}

// Record adds the grid's current generation to the history
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	// Keep only the last few states
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the grid's current generation repeats one of
// the last recorded generations
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) == 0 {
		return false
	}
	current := g.Hash()
	for i := len(h.hashes) - 1; i >= max(0, len(h.hashes)-cycleWindow); i-- {
		if h.hashes[i] == current {
			return true
		}
	}
	return false
}

// Observe checks the grid for stagnation and then records it
func (h *History) Observe(g *Grid) bool {
	stagnant := h.IsStagnant(g)
	h.Record(g)
	return stagnant
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
