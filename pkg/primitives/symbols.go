package primitives

import (
	"strings"
	"unicode/utf8"
)

// QuTile stands in for the two-letter "Qu" tile everywhere inside the solver.
// It sits directly below 'a' so the symbol space stays contiguous.
const QuTile = '`'

const quTileString = string(QuTile)

// NormalizeRow lower-cases a row of board input and collapses the Qu tile.
// Both "qu" and a lone "q" denote the tile.
func NormalizeRow(row string) string {
	row = strings.ToLower(strings.TrimSpace(row))
	row = strings.ReplaceAll(row, "qu", quTileString)
	return strings.ReplaceAll(row, "q", quTileString)
}

// NormalizeWord lower-cases a dictionary word and collapses every "qu".
// A "q" without a following "u" is left alone; no board can spell it.
func NormalizeWord(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	return strings.ReplaceAll(word, "qu", quTileString)
}

// Display expands the Qu tile back to "qu".
func Display(s string) string {
	return strings.ReplaceAll(s, quTileString, "qu")
}

// SymbolCount is the number of board cells a normalized string occupies.
func SymbolCount(s string) int {
	return utf8.RuneCountInString(s)
}

// DisplayLength is the number of letters a normalized string shows once expanded.
func DisplayLength(s string) int {
	return SymbolCount(s) + strings.Count(s, quTileString)
}
