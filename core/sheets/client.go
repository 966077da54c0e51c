package sheets

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"intl-sheets/core/utils"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// valueInputRaw stores values as typed, without formula evaluation.
const valueInputRaw = "RAW"

// ValueRange is a block of rows written to a range.
type ValueRange struct {
	Range  string
	Values [][]string
}

// Client defines the range operations used on the spreadsheet.
type Client interface {
	// Get returns every row of the range. An empty range yields no rows and no error.
	Get(ctx context.Context, spreadsheetID, rng string) ([][]string, error)
	// Clear removes the values of the range.
	Clear(ctx context.Context, spreadsheetID, rng string) error
	// BatchUpdate writes the given ranges in place using RAW input.
	BatchUpdate(ctx context.Context, spreadsheetID string, data []ValueRange) error
}

// NewClient creates a Sheets API client on top of an authorized HTTP client.
func NewClient(ctx context.Context, cfg Config, httpClient *http.Client) (Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("sheets: authorized http client is required")
	}

	// Work on a copy so the caller's client keeps its own timeout.
	hc := *httpClient
	if cfg.TimeoutSeconds > 0 {
		hc.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	srv, err := gsheets.NewService(ctx, option.WithHTTPClient(&hc))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &apiClient{values: srv.Spreadsheets.Values}, nil
}

type apiClient struct {
	values *gsheets.SpreadsheetsValuesService
}

func (c *apiClient) Get(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	resp, err := c.values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = utils.ToString(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *apiClient) Clear(ctx context.Context, spreadsheetID, rng string) error {
	_, err := c.values.Clear(spreadsheetID, rng, &gsheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

func (c *apiClient) BatchUpdate(ctx context.Context, spreadsheetID string, data []ValueRange) error {
	req := &gsheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputRaw,
		Data:             make([]*gsheets.ValueRange, 0, len(data)),
	}
	for _, d := range data {
		values := make([][]interface{}, 0, len(d.Values))
		for _, row := range d.Values {
			cells := make([]interface{}, len(row))
			for i, cell := range row {
				cells[i] = cell
			}
			values = append(values, cells)
		}
		req.Data = append(req.Data, &gsheets.ValueRange{Range: d.Range, Values: values})
	}

	_, err := c.values.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	return err
}
