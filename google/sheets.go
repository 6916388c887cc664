package google

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Sheets struct {
	service *sheets.Service
}

func NewSheets(ctx context.Context, client *http.Client) (*Sheets, error) {
	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return &Sheets{
		service: service,
	}, nil
}

// Read returns the cell values for a range. Trailing empty cells and rows are omitted by
// the Sheets API.
func (s *Sheets) Read(ctx context.Context, spreadsheet string, area string) ([][]any, error) {
	response, err := s.service.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	return response.Values, nil
}

// BatchWrite updates a set of ranges in a single request and returns the number of updated
// cells.
func (s *Sheets) BatchWrite(ctx context.Context, spreadsheet string, data []*sheets.ValueRange) (int64, error) {
	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}

	response, err := s.service.Spreadsheets.Values.BatchUpdate(spreadsheet, &rq).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("error writing to Google Sheets (%w)", err)
	}

	return response.TotalUpdatedCells, nil
}
