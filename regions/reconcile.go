package regions

import (
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// Index maps a region name to the 1-based rows carrying that name, in sheet order.
type Index map[string][]int

// NewIndex builds the name index from a column A read. Rows without a name are not indexed
// and neither is the header row.
func NewIndex(rows [][]any, columns Columns) Index {
	index := Index{}

	for i, row := range rows {
		if i == 0 && columns.Header {
			continue
		}

		if len(row) == 0 {
			continue
		}

		if name := cell(row[columns.Name]); name != "" {
			index[name] = append(index[name], i+1)
		}
	}

	return index
}

// Next consumes the first unclaimed row for name.
func (x Index) Next(name string) (int, bool) {
	rows := x[name]
	if len(rows) == 0 {
		return 0, false
	}

	x[name] = rows[1:]

	return rows[0], true
}

// Reconcile matches the edited regions to sheet rows by name, claiming rows for repeated
// names in sheet order, and returns the value ranges to write along with the edits that
// could not be matched. Edits without a start or end are never written and do not claim a
// row. The index is consumed.
func Reconcile(edits []Region, index Index, columns Columns) ([]*sheets.ValueRange, []Region) {
	data := []*sheets.ValueRange{}
	dropped := []Region{}

	for _, edit := range edits {
		if blank(edit.Start) || blank(edit.End) {
			dropped = append(dropped, edit)
			continue
		}

		row, ok := index.Next(edit.Name)
		if !ok {
			dropped = append(dropped, edit)
			continue
		}

		start := Normalise(edit.Start.String())
		end := Normalise(edit.End.String())

		data = append(data, ranges(row, columns, start, end)...)
	}

	return data, dropped
}

func blank(v Value) bool {
	return strings.TrimSpace(v.String()) == ""
}

func ranges(row int, columns Columns, start, end string) []*sheets.ValueRange {
	in, out := columns.Letters()

	switch {
	case columns.Out == columns.In+1:
		return []*sheets.ValueRange{
			{
				Range:  fmt.Sprintf("%v%v:%v%v", in, row, out, row),
				Values: [][]any{{start, end}},
			},
		}

	case columns.In == columns.Out+1:
		return []*sheets.ValueRange{
			{
				Range:  fmt.Sprintf("%v%v:%v%v", out, row, in, row),
				Values: [][]any{{end, start}},
			},
		}

	default:
		return []*sheets.ValueRange{
			{
				Range:  fmt.Sprintf("%v%v", in, row),
				Values: [][]any{{start}},
			},
			{
				Range:  fmt.Sprintf("%v%v", out, row),
				Values: [][]any{{end}},
			},
		}
	}
}
