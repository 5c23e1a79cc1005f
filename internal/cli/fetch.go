package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campuscs/mentormatch/internal/config"
	"github.com/campuscs/mentormatch/internal/sheets"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <spreadsheet-id> <responses.csv>",
	Short: "Download survey responses from Google Sheets",
	Long: `Download the sign-up form's response sheet to a local CSV file,
ready for 'mentormatch match' or 'mentormatch roster import'.

The spreadsheet ID is the long token in the sheet's URL. The first run
opens a browser for Google authentication; the token is cached after
that.

Examples:
  mentormatch fetch 1UavWkzNOr8H7lFvsQFKBNX responses.csv
  mentormatch fetch --range="Form Responses 1" 1UavWkzNOr8H7lFvsQFKBNX responses.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runFetch,
}

var fetchRange string

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchRange, "range", "",
		"sheet range to download (default: the configured range)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	readRange := cfg.Sheets.Range
	if fetchRange != "" {
		readRange = fetchRange
	}

	client := sheets.New(cfg.Sheets.CredentialsPath, cfg.Sheets.TokenPath)
	if err := client.Authenticate(ctx); err != nil {
		return err
	}

	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	rows, err := client.DownloadCSV(ctx, args[0], readRange, f)
	if err != nil {
		f.Close()
		os.Remove(args[1])
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Downloaded %d rows to %s\n", rows, args[1])
	return nil
}
