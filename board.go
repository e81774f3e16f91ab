package boggle

import (
	"fmt"
	"strings"
	"unicode"

	"crosswarped.com/boggle/pkg/primitives"
)

// Point is a cell coordinate, 0 <= X, Y < size.
type Point struct {
	X, Y int
}

// Board is a square grid of normalized symbols, stored row-major.
//
// A Board is immutable once constructed.
type Board struct {
	letters []rune
	size    int
}

// ParseBoard builds a Board from rows as a player would type them:
// any case, with "q" or "qu" standing for the Qu tile.
func ParseBoard(rows []string) (Board, error) {
	normalized := make([]string, len(rows))
	for i, row := range rows {
		normalized[i] = primitives.NormalizeRow(row)
	}
	return NewBoard(normalized)
}

// NewBoard builds a Board from already normalized rows. The first row fixes
// the side length, and exactly that many rows of that length are required.
func NewBoard(rows []string) (Board, error) {
	if len(rows) == 0 {
		return Board{}, &InvalidBoardError{Code: ErrCodeTooSmall}
	}

	size := primitives.SymbolCount(rows[0])
	if size < 2 {
		return Board{}, &InvalidBoardError{Code: ErrCodeTooSmall}
	}

	for i, row := range rows[1:] {
		if primitives.SymbolCount(row) != size {
			return Board{}, &InvalidBoardError{Code: ErrCodeRowSizeMismatch, Row: i + 1}
		}
	}
	if len(rows) != size {
		// A missing row is reported where it was expected, an extra one where it starts.
		return Board{}, &InvalidBoardError{Code: ErrCodeRowSizeMismatch, Row: min(len(rows), size)}
	}

	letters := make([]rune, 0, size*size)
	for y, row := range rows {
		for _, r := range row {
			if r != primitives.QuTile && (r > unicode.MaxASCII || !unicode.IsLower(r)) {
				return Board{}, &InvalidBoardError{Code: ErrCodeInvalidLetter, Row: y, Letter: r}
			}
			letters = append(letters, r)
		}
	}

	return Board{letters: letters, size: size}, nil
}

// Size is the side length of the board.
func (b Board) Size() int {
	return b.size
}

// NumCells is Size() squared.
func (b Board) NumCells() int {
	return len(b.letters)
}

func (b Board) LetterAt(p Point) rune {
	return b.letters[b.cell(p)]
}

// AdjacentPoints returns every on-board point that touches p, diagonals
// included. The order is stable: row by row, then column by column.
func (b Board) AdjacentPoints(p Point) []Point {
	points := make([]Point, 0, 8)
	for y := p.Y - 1; y <= p.Y+1; y++ {
		for x := p.X - 1; x <= p.X+1; x++ {
			if x == p.X && y == p.Y {
				continue
			}
			if x < 0 || x >= b.size || y < 0 || y >= b.size {
				continue
			}
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// Alphabet is the set of distinct symbols on the board.
func (b Board) Alphabet() *primitives.CharSet {
	cs := primitives.DefaultCharSet()
	for _, r := range b.letters {
		// NewBoard only admits symbols inside the default range.
		_ = cs.Add(r)
	}
	return cs
}

// Rows returns the normalized rows.
func (b Board) Rows() []string {
	rows := make([]string, b.size)
	for y := range b.size {
		rows[y] = string(b.letters[y*b.size : (y+1)*b.size])
	}
	return rows
}

// Repr renders the board one row per line, tiles upper-cased and separated
// by a space, the Qu tile shown as "Qu".
func (b Board) Repr() string {
	lines := make([]string, b.size)
	for y := range b.size {
		tiles := make([]string, b.size)
		for x := range b.size {
			tile := primitives.Display(string(b.LetterAt(Point{X: x, Y: y})))
			tiles[x] = fmt.Sprintf("%-2s", strings.ToUpper(tile[:1])+tile[1:])
		}
		lines[y] = strings.TrimRight(strings.Join(tiles, " "), " ")
	}
	return strings.Join(lines, "\n")
}

func (b Board) DebugString() string {
	return fmt.Sprintf("Board{size: %d, letters: %q}", b.size, string(b.letters))
}

func (b Board) cell(p Point) int {
	return p.Y*b.size + p.X
}

func (b Board) point(cell int) Point {
	return Point{X: cell % b.size, Y: cell / b.size}
}
