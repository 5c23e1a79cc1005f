package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "mentormatch")
	dataDir := filepath.Join(home, ".local", "share", "mentormatch")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'mentormatch config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Check the [survey.columns] layout against this cohort's form")
	fmt.Println("  2. Tune the [weights] section if the program's priorities changed")
	fmt.Println("  3. Run 'mentormatch validate responses.csv' on the survey export")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'mentormatch config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# mentormatch configuration

[survey]
tag_delimiter = ";"
capacity_source = "column"  # "column" reads the capacity answer; "hours" derives it from hours available

# Fallbacks for numeric answers that fail to parse. The form never
# validated numeric input, so expect dirty values.
fallback_hours = 1
fallback_time_zone = 0
fallback_experience = 0

# Zero-based column index of every survey field (spring-2021 form layout)
[survey.columns]
email = 1
role = 2
name = 3
year = 4
time_zone = 5
mentor_prefer_gender = 6
mentor_gender = 7
mentor_prefer_race = 8
mentor_race = 9
mentor_capacity = 10
mentor_available_time = 11
mentor_experience = 12
mentor_fields = 13
mentor_topics = 14
mentor_hobbies = 15
mentee_experience = 17
mentee_prefer_gender = 18
mentee_gender = 19
mentee_prefer_race = 20
mentee_race = 21
mentee_available_time = 22
mentee_topics = 23
mentee_fields = 24
mentee_hobbies = 25

[weights]
interests_multiplier = 5.0
topics_multiplier = 3.0
hobbies_multiplier = 1.5

# Gate penalties must dominate everything else combined
seniority_gate_penalty = 10000000.0
experience_gate_penalty = 10000000.0

close_in_year_bonus = 1.0
shared_mentor_penalty = 100.0

gender_match_bonus = 20.0
race_match_bonus = 20.0

time_zone_gap_penalty = 5.0
time_zone_gap_threshold = 5

availability_gap_penalty = 20.0
availability_gap_threshold = 2

[database]
path = "~/.local/share/mentormatch/roster.db"

[sheets]
credentials_path = "~/.config/mentormatch/credentials.json"
token_path = "~/.config/mentormatch/token.json"
range = "Form Responses 1"

[output]
debug = false  # true adds breakdown columns to the matches file
`
