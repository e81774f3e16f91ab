package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"crosswarped.com/boggle"
	"crosswarped.com/boggle/pkg/primitives"
)

const promptIntro = `Enter the letters of the board, row by row, without spaces (for "Qu" enter just "Q"):`

// promptRows asks for the board one row at a time. The first row fixes the
// size; a row of the wrong length stops the prompt straight away.
func promptRows(in io.Reader, out io.Writer) ([]string, error) {
	scanner := bufio.NewScanner(in)
	readRow := func(i int) (string, error) {
		fmt.Fprintf(out, "R%d: ", i+1)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	fmt.Fprintln(out, promptIntro)

	first, err := readRow(0)
	if err != nil {
		return nil, err
	}
	size := primitives.SymbolCount(primitives.NormalizeRow(first))
	if size < 2 {
		return nil, &boggle.InvalidBoardError{Code: boggle.ErrCodeTooSmall}
	}

	rows := []string{first}
	for i := 1; i < size; i++ {
		row, err := readRow(i)
		if err != nil {
			return nil, err
		}
		if primitives.SymbolCount(primitives.NormalizeRow(row)) != size {
			return nil, &boggle.InvalidBoardError{Code: boggle.ErrCodeRowSizeMismatch, Row: i}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
