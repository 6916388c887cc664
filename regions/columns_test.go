package regions

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	expected := Columns{Name: 0, In: 3, Out: 4, Header: true}

	row := []any{"Name", "Take", "Notes", "In", "Out"}

	columns := Resolve(row)
	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Incorrect columns\n   expected: %+v\n   got:      %+v\n", expected, columns)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		row      []any
		expected Columns
	}{
		{[]any{"name", "IN", "OUT"}, Columns{In: 1, Out: 2, Header: true}},
		{[]any{"name", "out", " In "}, Columns{In: 2, Out: 1, Header: true}},
		{[]any{"Name", "iN", "oUt"}, Columns{In: 1, Out: 2, Header: true}},
	}

	for _, test := range tests {
		columns := Resolve(test.row)
		if !reflect.DeepEqual(columns, test.expected) {
			t.Errorf("Incorrect columns for %v\n   expected: %+v\n   got:      %+v\n", test.row, test.expected, columns)
		}
	}
}

func TestResolveWithoutHeader(t *testing.T) {
	expected := Columns{Name: 0, In: 11, Out: 12, Header: false}

	tests := [][]any{
		nil,
		{},
		{"intro", "12.5", "13.0"},
		{"Name", "Start", "End", "Out"},
	}

	for _, row := range tests {
		columns := Resolve(row)
		if !reflect.DeepEqual(columns, expected) {
			t.Errorf("Incorrect columns for %v\n   expected: %+v\n   got:      %+v\n", row, expected, columns)
		}

		in, out := columns.Letters()
		if in != "L" || out != "M" {
			t.Errorf("Incorrect column letters for %v - expected:L,M, got:%v,%v", row, in, out)
		}
	}
}

func TestResolveWithPartialHeader(t *testing.T) {
	expected := Columns{Name: 0, In: 2, Out: 12, Header: true}

	columns := Resolve([]any{"Name", "Notes", "In"})
	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Incorrect columns\n   expected: %+v\n   got:      %+v\n", expected, columns)
	}

	in, out := columns.Letters()
	if in != "C" || out != "M" {
		t.Errorf("Incorrect column letters - expected:C,M, got:%v,%v", in, out)
	}
}

func TestResolveWithLocaleMarker(t *testing.T) {
	expected := Columns{Name: 0, In: 11, Out: 5, Header: true}

	columns := Resolve([]any{"English", "Español", "", "", "", "Out"})
	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Incorrect columns\n   expected: %+v\n   got:      %+v\n", expected, columns)
	}
}

func TestResolveWithCollidingColumns(t *testing.T) {
	expected := Columns{Name: 0, In: 11, Out: 12, Header: true}

	tests := [][]any{
		{"Name", "", "", "", "", "", "", "", "", "", "", "", "In"},
		{"Español", "", "", "", "", "", "", "", "", "", "", "Out"},
	}

	for _, row := range tests {
		columns := Resolve(row)
		if !reflect.DeepEqual(columns, expected) {
			t.Errorf("Incorrect columns for %v\n   expected: %+v\n   got:      %+v\n", row, expected, columns)
		}
	}
}

func TestColumnLetter(t *testing.T) {
	tests := map[int]string{
		-1:    "",
		0:     "A",
		1:     "B",
		11:    "L",
		12:    "M",
		25:    "Z",
		26:    "AA",
		27:    "AB",
		51:    "AZ",
		52:    "BA",
		701:   "ZZ",
		702:   "AAA",
		16383: "XFD",
	}

	for index, expected := range tests {
		if letters := ColumnLetter(index); letters != expected {
			t.Errorf("Incorrect column letters for %v - expected:%q, got:%q", index, expected, letters)
		}
	}
}

func TestColumnLetterRoundTrip(t *testing.T) {
	for index := 0; index < 20000; index++ {
		letters := ColumnLetter(index)
		if got := columnIndex(letters); got != index {
			t.Fatalf("Column index round trip failed for %v (%v) - got %v", index, letters, got)
		}

		for _, ch := range letters {
			if ch < 'A' || ch > 'Z' {
				t.Fatalf("Invalid column letter %q in %q", ch, letters)
			}
		}
	}
}

func TestColumnIndexWithInvalidLetters(t *testing.T) {
	tests := []string{"", " ", "A1", "$A", "-"}

	for _, letters := range tests {
		if index := columnIndex(letters); index != -1 {
			t.Errorf("Expected -1 for invalid column %q, got %v", letters, index)
		}
	}

	if index := columnIndex("ab"); index != 27 {
		t.Errorf("Incorrect column index for 'ab' - expected:27, got:%v", index)
	}
}
