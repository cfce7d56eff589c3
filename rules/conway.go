package rules

const (
	minSurvive = 2
	maxSurvive = 3
	birth      = 3
)

/*
Next returns the state of a cell in the following generation.

A live cell survives with two or three live neighbors and dies otherwise.
A dead cell becomes alive with exactly three live neighbors and stays dead otherwise.
*/
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= minSurvive && neighbors <= maxSurvive
	}
	return neighbors == birth
}
