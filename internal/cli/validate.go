package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campuscs/mentormatch/internal/config"
	"github.com/campuscs/mentormatch/internal/matching"
	"github.com/campuscs/mentormatch/internal/survey"
)

var validateCmd = &cobra.Command{
	Use:   "validate <responses.csv>",
	Short: "Check survey responses without matching",
	Long: `Parse the survey responses and report roster health: role counts,
total mentor capacity, feasibility, and participants needing attention.

Run this after every survey export; it catches capacity shortfalls and
dirty rows before anyone waits on a full matching run.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	roster, err := survey.ReadFile(args[0], cfg.Survey)
	if err != nil {
		return err
	}

	capacity := roster.TotalCapacity()

	fmt.Println("Survey Roster")
	fmt.Println(strings.Repeat("-", 30))
	fmt.Printf("Mentees:          %d\n", len(roster.Mentees))
	fmt.Printf("Mentors:          %d\n", len(roster.Mentors))
	fmt.Printf("Mentor capacity:  %d\n", capacity)
	fmt.Printf("Skipped rows:     %d\n", roster.SkippedRows)
	fmt.Println()

	if capacity < len(roster.Mentees) {
		err := &matching.InfeasibleError{Mentees: len(roster.Mentees), Slots: capacity}
		fmt.Printf("INFEASIBLE: %v\n", err)
		fmt.Println("Recruit more mentors or raise capacities before matching.")
	} else {
		fmt.Printf("Feasible: %d spare slots after matching every mentee\n", capacity-len(roster.Mentees))
	}

	if zeros := roster.ZeroCapacityMentors(); len(zeros) > 0 {
		fmt.Println()
		fmt.Printf("Mentors with zero capacity (%d):\n", len(zeros))
		for _, mentor := range zeros {
			fmt.Printf("  %s\n", mentor.Email)
		}
	}

	if empty := roster.MenteesWithoutInterests(); len(empty) > 0 {
		fmt.Println()
		fmt.Printf("Mentees with no declared career interests (%d):\n", len(empty))
		for _, mentee := range empty {
			fmt.Printf("  %s\n", mentee.Email)
		}
	}

	return nil
}
