package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage analysis settings",
	Long: `View and configure how documents are analysed.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsStopwordsCmd = &cobra.Command{
	Use:   "set-stopwords [words...]",
	Short: "Set the words ignored during analysis",
	Long: `Replaces the configured stopword list. Words are lowercased and
deduplicated. Run without arguments to clear the list.`,
	RunE: runSettingsStopwords,
}

var settingsDefaultStopwordsCmd = &cobra.Command{
	Use:       "default-stopwords on|off",
	Short:     "Toggle the bundled English stopword list",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runSettingsDefaultStopwords,
}

var settingsTopTermsCmd = &cobra.Command{
	Use:   "top-terms N",
	Short: "Set how many weighted terms are shown per document",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTopTerms,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsStopwordsCmd)
	settingsCmd.AddCommand(settingsDefaultStopwordsCmd)
	settingsCmd.AddCommand(settingsTopTermsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Analysis()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Analysis]")
	if len(settings.Stopwords) > 0 {
		cmd.Printf("  Stopwords: %s\n", strings.Join(settings.Stopwords, ", "))
	} else {
		cmd.Println("  Stopwords: (none)")
	}
	cmd.Printf("  Default stopwords: %s\n", onOff(settings.DefaultStopwords))
	cmd.Println()

	cmd.Println("[Report]")
	cmd.Printf("  Top terms: %d\n", settings.TopTerms)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Minimum interval: %dms\n", settingsService.WatchInterval())
	cmd.Println()

	if path := settingsService.ConfigPath(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current := settingsService.Analysis()
	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("SameDiff Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	// Step 1: default stopwords
	cmd.Println("Step 1: Ignore common English words?")
	cmd.Println("  1. Yes")
	cmd.Println("  2. No")
	defaultChoice := 2
	if current.DefaultStopwords {
		defaultChoice = 1
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultChoice)
	choice := parseChoice(readLine(reader), 2, defaultChoice)
	if err := settingsService.SetDefaultStopwords(choice == 1); err != nil {
		return fmt.Errorf("failed to set default stopwords: %w", err)
	}
	cmd.Println()

	// Step 2: custom stopwords
	cmd.Println("Step 2: Extra words to ignore")
	cmd.Printf("Enter words separated by spaces [%s]: ", strings.Join(current.Stopwords, " "))
	if input := readLine(reader); input != "" {
		if err := settingsService.SetStopwords(strings.Fields(input)); err != nil {
			return fmt.Errorf("failed to set stopwords: %w", err)
		}
	}
	cmd.Println()

	// Step 3: top terms
	cmd.Println("Step 3: Terms shown per document")
	cmd.Printf("Enter a number [%d]: ", current.TopTerms)
	topN := parseChoice(readLine(reader), 1000, current.TopTerms)
	if err := settingsService.SetTopTerms(topN); err != nil {
		return fmt.Errorf("failed to set top terms: %w", err)
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	return runSettingsShow(cmd, nil)
}

func runSettingsStopwords(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetStopwords(args); err != nil {
		return fmt.Errorf("failed to set stopwords: %w", err)
	}

	words := settingsService.Analysis().Stopwords
	if len(words) == 0 {
		cmd.Println("Stopwords cleared.")
		return nil
	}
	cmd.Printf("Stopwords set to: %s\n", strings.Join(words, ", "))
	return nil
}

func runSettingsDefaultStopwords(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var enabled bool
	switch strings.ToLower(args[0]) {
	case "on", "true", "yes":
		enabled = true
	case "off", "false", "no":
		enabled = false
	default:
		return fmt.Errorf("invalid value %q (want on or off)", args[0])
	}

	if err := settingsService.SetDefaultStopwords(enabled); err != nil {
		return fmt.Errorf("failed to set default stopwords: %w", err)
	}
	cmd.Printf("Default stopwords: %s\n", onOff(enabled))
	return nil
}

func runSettingsTopTerms(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid number %q", args[0])
	}
	if err := settingsService.SetTopTerms(n); err != nil {
		return fmt.Errorf("failed to set top terms: %w", err)
	}
	cmd.Printf("Top terms set to: %d\n", n)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > maxVal {
		return defaultVal
	}
	return choice
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
