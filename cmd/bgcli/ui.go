package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"crosswarped.com/boggle"
	"crosswarped.com/boggle/pkg/primitives"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorDim   = lipgloss.Color("240")
)

var (
	styleBoard  = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

// printBoard echoes the board the way it was understood.
func printBoard(w io.Writer, b boggle.Board) {
	fmt.Fprintln(w, styleBoard.Render(b.Repr()))
}

// printResult writes the count line and then one word per line. The count
// line keeps the "N word(s) found" wording whatever the styling.
func printResult(w io.Writer, res boggle.Result, elapsed time.Duration, cached bool) {
	header := fmt.Sprintf("%s word(s) found in %.6f seconds",
		styleNumber.Render(fmt.Sprint(len(res.Words))), elapsed.Seconds())
	if cached {
		header += styleDim.Render(" (cached)")
	}
	fmt.Fprintln(w, styleTitle.Render(header+":"))
	for _, word := range res.Words {
		fmt.Fprintln(w, word)
	}
}

// printCandidates summarizes the board's letters and what survived the
// dictionary filter.
func printCandidates(w io.Writer, alphabet *primitives.CharSet, total, candidates, prefixes int) {
	tiles := make([]string, 0, alphabet.Count())
	for _, r := range alphabet.String() {
		tiles = append(tiles, primitives.Display(string(r)))
	}
	fmt.Fprintf(w, "%s %s %s\n", styleTitle.Render("alphabet:"), styleNumber.Render(fmt.Sprint(alphabet.Count())), strings.Join(tiles, " "))
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render("dictionary:"), styleNumber.Render(fmt.Sprint(total)))
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render("candidates:"), styleNumber.Render(fmt.Sprint(candidates)))
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render("prefixes:"), styleNumber.Render(fmt.Sprint(prefixes)))
}
