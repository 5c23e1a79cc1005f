package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campuscs/mentormatch/internal/config"
	"github.com/campuscs/mentormatch/internal/database"
	"github.com/campuscs/mentormatch/internal/output"
	"github.com/campuscs/mentormatch/internal/survey"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the local participant roster",
	Long: `Import survey responses into a local roster database and inspect
them between matching runs. Only participants are stored; produced
matches never are.`,
}

var rosterImportCmd = &cobra.Command{
	Use:   "import <responses.csv>",
	Short: "Import survey responses into the roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterImport,
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored participants",
	RunE:  runRosterList,
}

var rosterStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show roster statistics",
	RunE:  runRosterStats,
}

var (
	rosterListRole  string
	rosterListBatch string
)

func init() {
	rootCmd.AddCommand(rosterCmd)
	rosterCmd.AddCommand(rosterImportCmd)
	rosterCmd.AddCommand(rosterListCmd)
	rosterCmd.AddCommand(rosterStatsCmd)

	rosterListCmd.Flags().StringVar(&rosterListRole, "role", "", "filter by role (Mentor, Mentee)")
	rosterListCmd.Flags().StringVar(&rosterListBatch, "batch", "", "filter by import batch ID")
}

func runRosterImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	roster, err := survey.ReadFile(args[0], cfg.Survey)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	batch, err := db.ImportRoster(ctx, args[0], cfg.Survey.TagDelimiter, roster)
	if err != nil {
		return fmt.Errorf("failed to import roster: %w", err)
	}

	fmt.Printf("Imported %d mentees and %d mentors (batch %s)\n",
		batch.MenteeCount, batch.MentorCount, batch.ID)
	if roster.SkippedRows > 0 {
		fmt.Printf("Skipped %d rows with unrecognized roles\n", roster.SkippedRows)
	}
	return nil
}

func runRosterList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	opts := database.ListOptions{
		Role:    rosterListRole,
		BatchID: rosterListBatch,
	}
	participants, err := db.ListParticipants(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list participants: %w", err)
	}

	return output.ParticipantsTable(os.Stdout, participants)
}

func runRosterStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	stats, err := db.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	fmt.Println("Roster Statistics")
	fmt.Println(strings.Repeat("-", 30))
	fmt.Printf("Import batches:          %d\n", stats.Batches)
	fmt.Printf("Mentees:                 %d\n", stats.Mentees)
	fmt.Printf("Mentors:                 %d\n", stats.Mentors)
	fmt.Printf("Total mentor capacity:   %d\n", stats.TotalCapacity)
	fmt.Printf("Zero-capacity mentors:   %d\n", stats.ZeroCapacityMentors)
	fmt.Println()

	batches, err := db.ListBatches(ctx)
	if err != nil {
		return fmt.Errorf("failed to list batches: %w", err)
	}

	return output.BatchesTable(os.Stdout, batches)
}
