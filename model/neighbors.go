package model

import "github.com/pkg/errors"

// neighborOffsets lists the (row, col) deltas of the 8 surrounding cells:
// up-left, up, up-right, left, right, down-left, down, down-right.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountNeighbors counts the living cells adjacent to index. The grid does
// not wrap: every candidate is bounds checked on row and column before its
// index is formed, so edge and corner cells simply have fewer candidates.
func CountNeighbors(g *Grid, index int) (int, error) {
	if err := g.checkIndex(index); err != nil {
		return 0, errors.Wrap(err, "[CountNeighbors]")
	}
	return g.countNeighbors(index), nil
}

// countNeighbors assumes index is valid
func (g *Grid) countNeighbors(index int) (count int) {
	row, col := g.Coords(index)
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if r < 0 || r >= g.size || c < 0 || c >= g.size {
			continue
		}
		if g.current[r*g.size+c] {
			count++
		}
	}
	return
}

// Candidates returns how many in-bounds neighbor positions a cell has on an
// n×n grid: 8 in the interior, 5 on an edge, 3 in a corner, fewer when n < 3.
func Candidates(n, index int) int {
	row, col := index/n, index%n
	count := 0
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if r >= 0 && r < n && c >= 0 && c < n {
			count++
		}
	}
	return count
}
