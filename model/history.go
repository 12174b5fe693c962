package model

// defaultHistorySize keeps enough hashes to spot oscillators up to period 3
const defaultHistorySize = 5

// History remembers the hashes of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history holding up to size hashes
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Len returns the number of remembered generations
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every remembered generation
func (h *History) Reset() {
	h.hashes = nil
}

// Update adds the grid's hash to history and maintains size
func (h *History) Update(g Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant checks whether g repeats one of the last three remembered generations
func (h *History) IsStagnant(g Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == currentHash {
			return true
		}
	}
	return false
}
