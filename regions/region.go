package regions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Region is a named time interval. RowIndex is the 1-based spreadsheet row and is only
// set on regions extracted from a sheet.
type Region struct {
	Name     string `json:"name"`
	Start    Value  `json:"start"`
	End      Value  `json:"end"`
	RowIndex int    `json:"row_index,omitempty"`
}

// Snapshot is the unit of data handed to the external editor.
type Snapshot struct {
	SheetID   string   `json:"sheet_id"`
	SheetName string   `json:"sheet_name"`
	WavPath   *string  `json:"wav_path"`
	Regions   []Region `json:"regions"`
}

type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Result struct {
	Status       string `json:"status"`
	UpdatedCells *int64 `json:"updatedCells,omitempty"`
}

type Failure struct {
	Error string `json:"error"`
}

func Success(cells int64) Result {
	return Result{
		Status:       "success",
		UpdatedCells: &cells,
	}
}

func NoChanges() Result {
	return Result{
		Status: "no_changes",
	}
}

// Value is a free-form cell value. It decodes from either a JSON string or a JSON number
// and always encodes as a JSON string.
type Value string

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""

	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value(s)

	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("invalid region value %s", string(b))
		}
		*v = Value(n.String())
	}

	return nil
}

func (v Value) String() string {
	return string(v)
}

// DecodeEdits reads the editor output, which is either a list of regions or a snapshot.
func DecodeEdits(r io.Reader) ([]Region, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	b = bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))
	b = bytes.TrimSpace(b)

	if len(b) == 0 {
		return nil, fmt.Errorf("empty edits file")
	}

	var list []json.RawMessage

	if b[0] == '{' {
		var snapshot struct {
			Regions []json.RawMessage `json:"regions"`
		}

		if err := json.Unmarshal(b, &snapshot); err != nil {
			return nil, fmt.Errorf("invalid snapshot (%w)", err)
		}

		list = snapshot.Regions
	} else if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("invalid region list (%w)", err)
	}

	regions := make([]Region, 0, len(list))
	for i, raw := range list {
		region, err := decodeRegion(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid region %d (%w)", i+1, err)
		}

		regions = append(regions, region)
	}

	return regions, nil
}

// decodeRegion unmarshals a single edited region. 'start' and 'end' are required and may
// not be null.
func decodeRegion(raw json.RawMessage) (Region, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Region{}, err
	}

	for _, k := range []string{"start", "end"} {
		if v, ok := fields[k]; !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return Region{}, fmt.Errorf("missing '%v' value", k)
		}
	}

	var region Region
	if err := json.Unmarshal(raw, &region); err != nil {
		return Region{}, err
	}

	return region, nil
}

func cell(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

func normalise(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
