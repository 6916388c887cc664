package commands

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/sheets/v4"

	"github.com/twystd/sheets-bridge/google"
)

type fakeDrive struct {
	folders map[string][]google.File
	files   map[string][]google.File
	content map[string][]byte
}

func (d *fakeDrive) Folders(ctx context.Context, folder string) ([]google.File, error) {
	if list, ok := d.folders[folder]; ok {
		return list, nil
	}

	return nil, fmt.Errorf("folder %v not found", folder)
}

func (d *fakeDrive) Files(ctx context.Context, folder string) ([]google.File, error) {
	return d.files[folder], nil
}

func (d *fakeDrive) Download(ctx context.Context, fileID string, w io.Writer) (int64, error) {
	b, ok := d.content[fileID]
	if !ok {
		return 0, fmt.Errorf("file %v not found", fileID)
	}

	N, err := w.Write(b)

	return int64(N), err
}

type fakeSheets struct {
	ranges  map[string][][]any
	reads   []string
	written [][]*sheets.ValueRange
}

func (s *fakeSheets) Read(ctx context.Context, spreadsheet string, area string) ([][]any, error) {
	s.reads = append(s.reads, spreadsheet+"!"+area)

	return s.ranges[area], nil
}

func (s *fakeSheets) BatchWrite(ctx context.Context, spreadsheet string, data []*sheets.ValueRange) (int64, error) {
	s.written = append(s.written, data)

	cells := 0
	for _, v := range data {
		for _, row := range v.Values {
			cells += len(row)
		}
	}

	return int64(cells), nil
}
