package export

import (
	"context"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// RangeUpdate is one team's pending rows addressed to a sheet range.
type RangeUpdate struct {
	Range  string
	Values [][]interface{}
}

// Sink receives all range updates of one flush cycle in a single call.
type Sink interface {
	Push(updates []RangeUpdate) error
}

// SheetsSink pushes updates to the review spreadsheet via the Google
// Sheets API, authenticated with a service-account credentials file.
type SheetsSink struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewSheetsSink(spreadsheetID, credentialsFile string) (*SheetsSink, error) {
	svc, err := sheets.NewService(context.Background(),
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, err
	}
	return &SheetsSink{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Push sends every team's rows in one batched values update.
func (s *SheetsSink) Push(updates []RangeUpdate) error {
	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &sheets.ValueRange{Range: u.Range, Values: u.Values})
	}

	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}
	_, err := s.svc.Spreadsheets.Values.BatchUpdate(s.spreadsheetID, req).Do()
	return err
}
