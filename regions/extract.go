package regions

// Parse resolves the columns from the first row and extracts the regions from the rest.
// An empty sheet yields the default columns and no regions.
func Parse(rows [][]any) (Columns, []Region) {
	var header []any
	if len(rows) > 0 {
		header = rows[0]
	}

	columns := Resolve(header)

	return columns, Extract(rows, columns)
}

// Extract returns a region for every row that is long enough to hold both the 'in' and
// 'out' cells and has a value in each. Anything else is skipped.
func Extract(rows [][]any, columns Columns) []Region {
	regions := []Region{}

	start := 0
	if columns.Header {
		start = 1
	}

	last := max(columns.In, columns.Out, columns.Name)

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= last {
			continue
		}

		in := cell(row[columns.In])
		out := cell(row[columns.Out])
		if in == "" || out == "" {
			continue
		}

		regions = append(regions, Region{
			Name:     cell(row[columns.Name]),
			Start:    Value(in),
			End:      Value(out),
			RowIndex: i + 1,
		})
	}

	return regions
}
