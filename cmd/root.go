package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/achievements/internal/config"
	"github.com/zjrosen/achievements/internal/log"
	"github.com/zjrosen/achievements/internal/milestone"
	"github.com/zjrosen/achievements/internal/ui/styles"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	rawDays bool
	cfg     config.Config

	// cfgErr records a fatal config-load failure from initConfig so the
	// running command can surface it through cobra's error path.
	// Not-found is not fatal (a default config is created); anything
	// else - unreadable or unparseable config - is.
	cfgErr error

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Report how long ago your memorable days happened",
	Long: `Reports the approximate time elapsed since each configured milestone,
decorated with badge markers that grow with the interval.

The arithmetic is deliberately rough: a day is 86400 seconds, a month is
30 days, a year is 365 days. Counts can be a day off compared to
calendar-accurate results.`,
	Version: version,
	RunE:    runReport,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/achievements/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to ~/.config/achievements/debug.log")
	rootCmd.Flags().BoolVar(&rawDays, "days", false,
		"always report raw day counts instead of weeks/months/years")
}

func initConfig() {
	initDebugLog()

	defaults := config.Defaults()
	milestoneDefaults := make([]map[string]string, 0, len(defaults.Milestones))
	for _, m := range defaults.Milestones {
		milestoneDefaults = append(milestoneDefaults, map[string]string{
			"label": m.Label,
			"date":  m.Date,
		})
	}
	viper.SetDefault("milestones", milestoneDefaults)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .achievements/config.yaml (current directory)
		// 2. ~/.config/achievements/config.yaml (user config)
		if _, err := os.Stat(filepath.Join(".achievements", "config.yaml")); err == nil {
			viper.SetConfigFile(filepath.Join(".achievements", "config.yaml"))
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "achievements"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	cfgErr = nil
	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default user config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := defaultConfigPath()
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				err = viper.ReadInConfig()
			} else {
				// If write fails, just continue with defaults (no config file)
				err = nil
			}
		}
		// An unreadable or unparseable config is fatal: substituting
		// defaults would silently hide the user's milestones.
		if err != nil {
			cfgErr = fmt.Errorf("reading config: %w", err)
			log.ErrorErr(log.CatConfig, "Failed to read config", err,
				"path", viper.ConfigFileUsed())
			return
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		cfgErr = fmt.Errorf("parsing config: %w", err)
		log.ErrorErr(log.CatConfig, "Failed to parse config", err,
			"path", viper.ConfigFileUsed())
		return
	}
	log.Debug(log.CatConfig, "Loaded config",
		"path", viper.ConfigFileUsed(), "milestones", len(cfg.Milestones))
}

func initDebugLog() {
	if !debug && os.Getenv("ACHIEVEMENTS_DEBUG") == "" {
		return
	}

	cleanup, err := log.Init(debugLogPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(
			fmt.Sprintf("achievements: cannot open debug log: %v", err)))
		return
	}
	logCleanup = cleanup
}

// defaultConfigPath is where a missing config is created, and where
// set/remove write when no config was discovered.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".achievements", "config.yaml")
	}
	return filepath.Join(home, ".config", "achievements", "config.yaml")
}

func debugLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "achievements-debug.log"
	}
	dir := filepath.Join(home, ".config", "achievements")
	_ = os.MkdirAll(dir, 0o750)
	return filepath.Join(dir, "debug.log")
}

// configFilePath returns the config file the editing commands write to.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	return defaultConfigPath()
}

func runReport(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	if err := config.ValidateMilestones(cfg.Milestones); err != nil {
		return fmt.Errorf("invalid milestone configuration: %w", err)
	}

	milestones, err := config.ToMilestones(cfg.Milestones)
	if err != nil {
		return fmt.Errorf("invalid milestone configuration: %w", err)
	}

	report := milestone.BuildReport(milestone.SystemClock{}, milestones)
	log.Debug(log.CatClock, "Read clock", "now", report.Now.Format(time.RFC3339))
	log.Debug(log.CatReport, "Built report", "milestones", len(report.Lines))

	for _, line := range report.Lines {
		if line.Skipped() {
			log.Warn(log.CatReport, "Skipping future-dated milestone", "label", line.Label)
			fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatSkippedLine(line.Label, line.Err))
			continue
		}

		words := line.Interval.Words()
		if rawDays {
			words = line.Interval.DayWords()
		}
		fmt.Fprintln(cmd.OutOrStdout(),
			styles.FormatMilestoneLine(line.Label, words, line.Interval.Badges()))
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCleanup != nil {
			logCleanup()
		}
	}()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
