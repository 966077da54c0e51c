package mocks

import (
	"context"

	"intl-sheets/core/sheets"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of sheets.Client
type Client struct {
	mock.Mock
}

func (m *Client) Get(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	args := m.Called(ctx, spreadsheetID, rng)
	if rows, ok := args.Get(0).([][]string); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Clear(ctx context.Context, spreadsheetID, rng string) error {
	args := m.Called(ctx, spreadsheetID, rng)
	return args.Error(0)
}

func (m *Client) BatchUpdate(ctx context.Context, spreadsheetID string, data []sheets.ValueRange) error {
	args := m.Called(ctx, spreadsheetID, data)
	return args.Error(0)
}
