package regions

import (
	"slices"
	"strings"
)

const (
	DefaultIn  = 11 // L
	DefaultOut = 12 // M
)

// Columns holds the 0-based positions of the name, in and out columns of a region sheet.
type Columns struct {
	Name   int
	In     int
	Out    int
	Header bool
}

// Resolve locates the 'in' and 'out' columns from the first row of a sheet. A row is a
// header if it contains an 'in' (or 'español') cell. Missing 'in' or 'out' cells fall back
// to the defaults independently of each other, unless that would put 'in' and 'out' in the
// same column in which case both revert to the defaults.
func Resolve(row []any) Columns {
	columns := Columns{
		Name: 0,
		In:   DefaultIn,
		Out:  DefaultOut,
	}

	header := make([]string, len(row))
	for i, v := range row {
		header[i] = normalise(cell(v))
	}

	if !slices.Contains(header, "in") && !slices.Contains(header, "español") {
		return columns
	}

	columns.Header = true

	if ix := slices.Index(header, "in"); ix >= 0 {
		columns.In = ix
	}

	if ix := slices.Index(header, "out"); ix >= 0 {
		columns.Out = ix
	}

	// a lone 'in' or 'out' in the other's default column
	if columns.In == columns.Out {
		columns.In = DefaultIn
		columns.Out = DefaultOut
	}

	return columns
}

// Letters returns the A1 column letters for the 'in' and 'out' columns.
func (c Columns) Letters() (string, string) {
	return ColumnLetter(c.In), ColumnLetter(c.Out)
}

// ColumnLetter converts a 0-based column index to its spreadsheet letters (0 → A, 25 → Z,
// 26 → AA). Negative indices have no letters.
func ColumnLetter(index int) string {
	if index < 0 {
		return ""
	}

	var b []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		b = append(b, byte('A'+(n-1)%26))
	}

	slices.Reverse(b)

	return string(b)
}

// columnIndex is the inverse of ColumnLetter. It returns -1 for anything that is not a
// column reference.
func columnIndex(letters string) int {
	letters = strings.ToUpper(strings.TrimSpace(letters))
	if letters == "" {
		return -1
	}

	n := 0
	for _, ch := range letters {
		if ch < 'A' || ch > 'Z' {
			return -1
		}

		n = n*26 + int(ch-'A'+1)
	}

	return n - 1
}
