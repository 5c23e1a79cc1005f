package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campuscs/mentormatch/internal/config"
	"github.com/campuscs/mentormatch/internal/matching"
	"github.com/campuscs/mentormatch/internal/output"
	"github.com/campuscs/mentormatch/internal/survey"
)

var matchCmd = &cobra.Command{
	Use:   "match <responses.csv> <matches.csv>",
	Short: "Match every mentee to a mentor",
	Long: `Parse survey responses, compute the optimal mentee-to-mentor
assignment, and write the pairings to a matches CSV.

The output file is only written after a complete assignment is found;
a parse or solver failure leaves no partial output behind.

Examples:
  mentormatch match responses.csv matches.csv
  mentormatch match --debug responses.csv matches.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

var matchDebug bool

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolVar(&matchDebug, "debug", false,
		"include per-criterion breakdowns in the output and print aggregate statistics")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	debug := cfg.Output.Debug || matchDebug

	roster, err := survey.ReadFile(args[0], cfg.Survey)
	if err != nil {
		return err
	}

	reportRosterWarnings(roster)

	assignment, err := matching.Solve(roster.Mentees, roster.Mentors, cfg.Weights)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if err := output.WriteMatchesFile(args[1], assignment.Edges, debug); err != nil {
		return err
	}

	fmt.Printf("Matched %d mentees to %d mentors (%d slots available)\n",
		len(assignment.Edges), len(roster.Mentors), roster.TotalCapacity())
	fmt.Printf("Wrote %s\n", args[1])

	if debug {
		fmt.Println()
		fmt.Println("Match quality by criterion:")
		if err := output.CriterionStatsTable(os.Stdout, matching.Summarize(assignment.Edges)); err != nil {
			return err
		}
		fmt.Printf("Total weight: %.2f\n", assignment.TotalWeight)
	}

	return nil
}

// reportRosterWarnings surfaces participants who will sit out the
// matching or score zero on a criterion, so nobody disappears silently.
func reportRosterWarnings(roster *survey.Roster) {
	for _, mentor := range roster.ZeroCapacityMentors() {
		fmt.Fprintf(os.Stderr, "Warning: mentor %s has zero capacity and will not be matched\n", mentor.Email)
	}
	for _, mentee := range roster.MenteesWithoutInterests() {
		fmt.Fprintf(os.Stderr, "Warning: mentee %s declared no career interests; interest overlap scores 0\n", mentee.Email)
	}
}
