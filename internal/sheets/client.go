package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client downloads survey responses from the Google Sheet backing the
// sign-up form, replacing the manual "download as CSV" step.
type Client struct {
	credPath  string
	tokenPath string
	service   *sheets.Service
}

// New creates a new Sheets client
func New(credPath, tokenPath string) *Client {
	return &Client{
		credPath:  credPath,
		tokenPath: tokenPath,
	}
}

// IsAuthenticated checks if a valid token exists
func (c *Client) IsAuthenticated() bool {
	_, err := loadToken(c.tokenPath)
	return err == nil
}

// Authenticate performs OAuth authentication
func (c *Client) Authenticate(ctx context.Context) error {
	config, err := loadCredentials(c.credPath)
	if err != nil {
		return err
	}

	client, err := getClient(ctx, config, c.tokenPath)
	if err != nil {
		return fmt.Errorf("failed to get OAuth client: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("failed to create Sheets service: %w", err)
	}

	c.service = service
	return nil
}

// DownloadCSV fetches the given range of a spreadsheet and writes it as
// CSV, one survey response per row.
func (c *Client) DownloadCSV(ctx context.Context, spreadsheetID, readRange string, w io.Writer) (int, error) {
	if c.service == nil {
		return 0, fmt.Errorf("not authenticated - call Authenticate() first")
	}

	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch spreadsheet values: %w", err)
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	for _, row := range resp.Values {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = fmt.Sprintf("%v", cell)
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, err
	}
	return len(resp.Values), nil
}
