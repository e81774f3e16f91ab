package boggle

import "fmt"

// Code is a machine-readable reason a board was rejected.
type Code string

const (
	ErrCodeTooSmall        Code = "BOARD_TOO_SMALL"
	ErrCodeRowSizeMismatch Code = "ROW_SIZE_MISMATCH"
	ErrCodeInvalidLetter   Code = "INVALID_LETTER"
)

// Sentinels for errors.Is. Only the Code is compared.
var (
	ErrTooSmall        = &InvalidBoardError{Code: ErrCodeTooSmall}
	ErrRowSizeMismatch = &InvalidBoardError{Code: ErrCodeRowSizeMismatch}
	ErrInvalidLetter   = &InvalidBoardError{Code: ErrCodeInvalidLetter}
)

// InvalidBoardError reports why board input could not be turned into a Board.
type InvalidBoardError struct {
	Code   Code
	Row    int  // zero-based row the problem was found on
	Letter rune // offending symbol, for ErrCodeInvalidLetter
}

// Error returns a message meant for whoever typed the board; rows are
// numbered from 1 the way they are prompted.
func (e *InvalidBoardError) Error() string {
	switch e.Code {
	case ErrCodeTooSmall:
		return "board must be at least 2x2"
	case ErrCodeRowSizeMismatch:
		return fmt.Sprintf("incorrect size for R%d", e.Row+1)
	case ErrCodeInvalidLetter:
		return fmt.Sprintf("invalid letter %q in R%d", e.Letter, e.Row+1)
	}
	return fmt.Sprintf("invalid board: %s", e.Code)
}

// Is matches any InvalidBoardError with the same Code.
func (e *InvalidBoardError) Is(target error) bool {
	t, ok := target.(*InvalidBoardError)
	return ok && t.Code == e.Code
}
