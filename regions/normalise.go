package regions

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// Normalise formats a numeric value as seconds with one decimal place and a '.' decimal
// separator. Anything that is not a finite decimal number is returned unchanged.
func Normalise(v string) string {
	f, ok := decimal(v)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return v
	}

	return strconv.FormatFloat(f, 'f', 1, 64)
}

// decimal parses a decimal number. Hex floats are not numbers here and single underscores
// between digits are digit separators (1_000).
func decimal(v string) (float64, bool) {
	s := strings.TrimSpace(v)
	unsigned := strings.ToLower(strings.TrimLeft(s, "+-"))

	if strings.HasPrefix(unsigned, "0x") {
		return 0, false
	}

	if strings.Contains(s, "_") {
		for i, ch := range s {
			if ch == '_' && (i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1])) {
				return 0, false
			}
		}

		s = strings.ReplaceAll(s, "_", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Sanitize keeps only letters, digits, spaces and '.', '_' and '-' in a file name.
func Sanitize(filename string) string {
	var b strings.Builder

	for _, ch := range filename {
		switch {
		case unicode.IsLetter(ch), unicode.IsDigit(ch):
			b.WriteRune(ch)
		case ch == ' ', ch == '.', ch == '_', ch == '-':
			b.WriteRune(ch)
		}
	}

	return strings.TrimSpace(b.String())
}

// Timestamped inserts _<unix seconds> before the file extension.
func Timestamped(filename string, unix int64) string {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)

	return fmt.Sprintf("%v_%v%v", name, unix, ext)
}
