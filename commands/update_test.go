package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"

	"github.com/twystd/sheets-bridge/regions"
)

func TestUpdateWithDuplicateNames(t *testing.T) {
	expected := []*sheets.ValueRange{
		{Range: "L1:M1", Values: [][]any{{"1.0", "2.0"}}},
		{Range: "L3:M3", Values: [][]any{{"3.0", "4.0"}}},
	}

	gsheets := fakeSheets{
		ranges: map[string][][]any{
			NAMES: {{"A"}, {"B"}, {"A"}},
		},
	}

	edits := []regions.Region{
		{Name: "A", Start: "1", End: "2"},
		{Name: "A", Start: "3", End: "4"},
	}

	cmd := Update{}

	result, err := cmd.update(context.Background(), &gsheets, "S1", edits)
	if err != nil {
		t.Fatalf("Unexpected error updating sheet (%v)", err)
	}

	if !reflect.DeepEqual(result, regions.Success(4)) {
		t.Errorf("Incorrect result - expected:success/4, got:%+v", result)
	}

	if len(gsheets.written) != 1 {
		t.Fatalf("Expected a single batch write, got %v", len(gsheets.written))
	}

	if !reflect.DeepEqual(gsheets.written[0], expected) {
		t.Errorf("Incorrect batch write\n   expected: %v\n   got:      %v\n", values(expected), values(gsheets.written[0]))
	}
}

func TestUpdateWithHeader(t *testing.T) {
	expected := []*sheets.ValueRange{
		{Range: "D3:E3", Values: [][]any{{"12.5", "20.0"}}},
		{Range: "D2:E2", Values: [][]any{{"0.0", "tbd"}}},
	}

	gsheets := fakeSheets{
		ranges: map[string][][]any{
			HEADER: {{"Name", "Notes", "", "IN", "OUT"}},
			NAMES:  {{"Name"}, {"intro"}, {"verse"}},
		},
	}

	edits := []regions.Region{
		{Name: "verse", Start: "12.5", End: "20"},
		{Name: "intro", Start: "0", End: "tbd"},
		{Name: "Name", Start: "1", End: "2"},
	}

	cmd := Update{}

	result, err := cmd.update(context.Background(), &gsheets, "S1", edits)
	if err != nil {
		t.Fatalf("Unexpected error updating sheet (%v)", err)
	}

	if !reflect.DeepEqual(result, regions.Success(4)) {
		t.Errorf("Incorrect result - expected:success/4, got:%+v", result)
	}

	if !reflect.DeepEqual(gsheets.written[0], expected) {
		t.Errorf("Incorrect batch write\n   expected: %v\n   got:      %v\n", values(expected), values(gsheets.written[0]))
	}

	if !reflect.DeepEqual(gsheets.reads, []string{"S1!A1:M1", "S1!A:A"}) {
		t.Errorf("Incorrect sheet reads %v", gsheets.reads)
	}
}

func TestUpdateUnmatchedEditsDoNotAffectOtherEdits(t *testing.T) {
	expected := []*sheets.ValueRange{
		{Range: "L2:M2", Values: [][]any{{"5.0", "6.0"}}},
	}

	gsheets := fakeSheets{
		ranges: map[string][][]any{
			NAMES: {{"A"}, {"B"}},
		},
	}

	edits := []regions.Region{
		{Name: "X", Start: "1", End: "2"},
		{Name: "B", Start: "5", End: "6"},
		{Name: "B", Start: "7", End: "8"},
	}

	cmd := Update{}

	result, err := cmd.update(context.Background(), &gsheets, "S1", edits)
	if err != nil {
		t.Fatalf("Unexpected error updating sheet (%v)", err)
	}

	if !reflect.DeepEqual(result, regions.Success(2)) {
		t.Errorf("Incorrect result - expected:success/2, got:%+v", result)
	}

	if !reflect.DeepEqual(gsheets.written[0], expected) {
		t.Errorf("Incorrect batch write\n   expected: %v\n   got:      %v\n", values(expected), values(gsheets.written[0]))
	}
}

func TestUpdateWithNoMatchingRows(t *testing.T) {
	gsheets := fakeSheets{
		ranges: map[string][][]any{
			NAMES: {{"A"}, {"B"}},
		},
	}

	edits := []regions.Region{
		{Name: "nowhere", Start: "1", End: "2"},
	}

	cmd := Update{}

	result, err := cmd.update(context.Background(), &gsheets, "S1", edits)
	if err != nil {
		t.Fatalf("Unexpected error updating sheet (%v)", err)
	}

	if !reflect.DeepEqual(result, regions.NoChanges()) {
		t.Errorf("Incorrect result - expected:no_changes, got:%+v", result)
	}

	if len(gsheets.written) != 0 {
		t.Errorf("Expected no batch write, got %v", gsheets.written)
	}

	var b bytes.Buffer
	if err := emit(&b, "", result); err != nil {
		t.Fatalf("Unexpected error writing result (%v)", err)
	}

	if b.String() != `{"status":"no_changes"}`+"\n" {
		t.Errorf("Incorrect result JSON %s", b.String())
	}
}

func TestUpdateLoad(t *testing.T) {
	expected := []regions.Region{
		{Name: "intro", Start: "0", End: "12.25"},
	}

	file := filepath.Join(t.TempDir(), "edits.json")
	if err := os.WriteFile(file, []byte(`[{"name":"intro","start":0,"end":12.25}]`), 0644); err != nil {
		t.Fatalf("Error creating edits file (%v)", err)
	}

	cmd := Update{}

	edits, err := cmd.load(file)
	if err != nil {
		t.Fatalf("Unexpected error loading edits (%v)", err)
	}

	if !reflect.DeepEqual(edits, expected) {
		t.Errorf("Incorrect edits\n   expected: %+v\n   got:      %+v\n", expected, edits)
	}

	if _, err := cmd.load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Expected error loading missing edits file")
	}
}

func TestUpdateLoadWithMissingValues(t *testing.T) {
	file := filepath.Join(t.TempDir(), "edits.json")
	if err := os.WriteFile(file, []byte(`[{"name":"A"},{"name":"B","start":null,"end":null}]`), 0644); err != nil {
		t.Fatalf("Error creating edits file (%v)", err)
	}

	cmd := Update{}

	if _, err := cmd.load(file); err == nil {
		t.Errorf("Expected error loading edits without start/end values")
	}
}

func TestUpdateWithBlankValues(t *testing.T) {
	gsheets := fakeSheets{
		ranges: map[string][][]any{
			NAMES: {{"A"}, {"B"}},
		},
	}

	edits := []regions.Region{
		{Name: "A", Start: "", End: ""},
		{Name: "B", Start: "1", End: ""},
	}

	cmd := Update{}

	result, err := cmd.update(context.Background(), &gsheets, "S1", edits)
	if err != nil {
		t.Fatalf("Unexpected error updating sheet (%v)", err)
	}

	if !reflect.DeepEqual(result, regions.NoChanges()) {
		t.Errorf("Incorrect result - expected:no_changes, got:%+v", result)
	}

	if len(gsheets.written) != 0 {
		t.Errorf("Expected no batch write, got %v", gsheets.written)
	}
}

func values(data []*sheets.ValueRange) []sheets.ValueRange {
	list := []sheets.ValueRange{}
	for _, v := range data {
		list = append(list, *v)
	}

	return list
}
