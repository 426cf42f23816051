package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/achievements/internal/config"
	"github.com/zjrosen/achievements/internal/log"
)

var setCmd = &cobra.Command{
	Use:   "set <label> <date>",
	Short: "Add a milestone or update its date",
	Long: `Add a milestone to the config, or update the date of an existing one.

A milestone with the same label (ignoring surrounding whitespace) is
updated in place; any other entry is left untouched. New labels are
appended at the end of the list.

Dates are RFC 3339 or a plain day (taken as midnight UTC).

Examples:
  achievements set "Moon landing" 1969-07-20T20:17:40Z
  achievements set "First day at work" 2019-09-02`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			// Saving on top of a config that failed to load would
			// overwrite the user's milestones.
			return cfgErr
		}

		label := strings.TrimSpace(args[0])
		if label == "" {
			return fmt.Errorf("label must not be empty")
		}

		date, err := config.ParseDate(args[1])
		if err != nil {
			return err
		}

		updated := config.SetMilestone(cfg.Milestones, label, date.Format(time.RFC3339))
		path := configFilePath()
		if err := config.SaveMilestones(path, updated); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		log.Info(log.CatConfig, "Saved milestone", "label", label, "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s)\n", label, date.Format(time.RFC3339))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
