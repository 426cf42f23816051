package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/achievements/internal/config"
	"github.com/zjrosen/achievements/internal/log"
)

var removeCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a milestone",
	Long: `Remove the milestone with the given label from the config.

The label comparison ignores case and leading/trailing whitespace.

Examples:
  achievements remove "Moon landing"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}

		label := strings.TrimSpace(args[0])

		updated, removed := config.RemoveMilestone(cfg.Milestones, label)
		if !removed {
			return fmt.Errorf("no milestone with label %q", label)
		}

		path := configFilePath()
		if err := config.SaveMilestones(path, updated); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		log.Info(log.CatConfig, "Removed milestone", "label", label, "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", label)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
