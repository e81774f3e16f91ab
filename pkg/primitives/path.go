package primitives

import "fmt"

// Path is the backtracking buffer of a board search: the cells walked so far
// and the symbols they spell. Cells are identified by their row-major index.
//
// Push and Pop are O(1); a single Path is reused across every branch of a
// search, so callers must Pop exactly what they Push.
type Path struct {
	cells   []int
	visited []bool
	letters []byte
}

// NewPath returns an empty path for a board with numCells cells.
func NewPath(numCells int) *Path {
	return &Path{
		cells:   make([]int, 0, numCells),
		visited: make([]bool, numCells),
		letters: make([]byte, 0, numCells),
	}
}

// Push extends the path by cell, spelling symbol.
func (p *Path) Push(cell int, symbol byte) {
	if p.visited[cell] {
		panic(fmt.Sprintf("cell %d is already on the path", cell))
	}
	p.visited[cell] = true
	p.cells = append(p.cells, cell)
	p.letters = append(p.letters, symbol)
}

// Pop retracts the last cell.
func (p *Path) Pop() {
	last := len(p.cells) - 1
	p.visited[p.cells[last]] = false
	p.cells = p.cells[:last]
	p.letters = p.letters[:last]
}

// Visited reports whether cell is already on the path.
func (p *Path) Visited(cell int) bool {
	return p.visited[cell]
}

// Last returns the most recently pushed cell.
func (p *Path) Last() int {
	return p.cells[len(p.cells)-1]
}

// Letters is the spelled string. The slice is only valid until the next Push or Pop.
func (p *Path) Letters() []byte {
	return p.letters
}
