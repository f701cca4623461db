package advisory

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line is a single advisory ID read from a list, with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// ReadIDLines reads advisory IDs from r, one per line. Surrounding whitespace
// is trimmed, and blank lines and lines starting with "#" are skipped.
func ReadIDLines(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading advisory IDs: %w", err)
	}

	return lines, nil
}
