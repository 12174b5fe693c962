package rules

const (
	// UnderpopulatedBelow is the live-neighbor count a cell needs to avoid dying alone
	UnderpopulatedBelow = 2
	// OvercrowdedAbove is the largest live-neighbor count a cell survives
	OvercrowdedAbove = 3
	// Generative is the exact live-neighbor count that brings a cell to life
	Generative = 3
)

// IsUnderpopulated reports whether a cell dies from too few live neighbors
func IsUnderpopulated(neighbors int) bool {
	return neighbors < UnderpopulatedBelow
}

// IsOvercrowded reports whether a cell dies from too many live neighbors
func IsOvercrowded(neighbors int) bool {
	return neighbors > OvercrowdedAbove
}

// IsDeadly reports whether the neighbor count kills a cell regardless of its state
func IsDeadly(neighbors int) bool {
	return IsUnderpopulated(neighbors) || IsOvercrowded(neighbors)
}

// IsGenerative reports whether the neighbor count makes a cell alive regardless of its state
func IsGenerative(neighbors int) bool {
	return neighbors == Generative
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Deadly counts win first, then generative counts; any other count keeps the
current state, which only matters for a live cell with exactly two neighbors.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case IsDeadly(neighbors):
		return false
	case IsGenerative(neighbors):
		return true
	default:
		return alive
	}
}
