// Package wordlist reads reference word lists and normalizes them for the
// solver: lower-cased, trimmed, with "qu" collapsed to the Qu tile.
package wordlist

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"crosswarped.com/boggle/pkg/primitives"
)

// DefaultSeparator is the delimiter of the bundled list.
const DefaultSeparator = ","

const maxTokenSize = 1 << 20

//go:embed words.txt
var defaultWords string

var (
	defaultOnce   sync.Once
	defaultParsed []string
)

// Default returns the bundled word list. The slice is shared; do not modify it.
func Default() []string {
	defaultOnce.Do(func() {
		words, err := Parse(context.Background(), strings.NewReader(defaultWords), DefaultSeparator)
		if err != nil {
			panic(fmt.Sprintf("bundled word list is unreadable: %v", err))
		}
		defaultParsed = words
	})
	return defaultParsed
}

// Parse tokenizes r on sep (newlines always separate too) and returns the
// normalized words. Empty tokens and lines starting with '#' are skipped.
func Parse(ctx context.Context, r io.Reader, sep string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(splitOn(sep))

	var words []string
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		token := strings.TrimSpace(scanner.Text())
		if token == "" || strings.HasPrefix(token, "#") {
			continue
		}
		words = append(words, primitives.NormalizeWord(token))
	}
	return words, scanner.Err()
}

// Normalize returns a normalized copy of already tokenized words, dropping blanks.
func Normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if n := primitives.NormalizeWord(w); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// LoadFile reads and parses the word list at path.
func LoadFile(ctx context.Context, path string, sep string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := Parse(ctx, f, sep)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return words, nil
}

// splitOn is a bufio.SplitFunc that breaks tokens at sep or at a newline,
// whichever comes first.
func splitOn(sep string) bufio.SplitFunc {
	delim := []byte(sep)
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}

		at, width := bytes.IndexByte(data, '\n'), 1
		if len(delim) > 0 {
			if i := bytes.Index(data, delim); i >= 0 && (at < 0 || i < at) {
				at, width = i, len(delim)
			}
		}
		if at >= 0 {
			return at + width, data[:at], nil
		}

		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
