// Package config provides configuration types, defaults, and persistence
// for achievements.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zjrosen/achievements/internal/log"
	"github.com/zjrosen/achievements/internal/milestone"
)

// MilestoneConfig defines a single tracked milestone as it appears in
// the config file. Dates are RFC 3339 or plain "2006-01-02" (taken as
// midnight UTC).
type MilestoneConfig struct {
	Label string `mapstructure:"label"`
	Date  string `mapstructure:"date"`
}

// Config holds all configuration options for achievements.
type Config struct {
	Milestones []MilestoneConfig `mapstructure:"milestones"`
}

// Defaults returns the starter configuration written on first run.
func Defaults() Config {
	return Config{
		Milestones: DefaultMilestones(),
	}
}

// DefaultMilestones returns the example milestones shipped with a fresh
// install.
func DefaultMilestones() []MilestoneConfig {
	return []MilestoneConfig{
		{
			Label: "Moon landing",
			Date:  "1969-07-20T20:17:40Z",
		},
		{
			Label: "Berlin Wall Fall",
			Date:  "1989-11-09T18:53:00+01:00",
		},
	}
}

// ParseDate parses a milestone date, accepting RFC 3339 or a bare
// "2006-01-02" date (midnight UTC).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want RFC 3339 or YYYY-MM-DD)", s)
}

// ValidateMilestones checks milestone configuration for errors.
// Returns nil if milestones are valid or empty (will use defaults).
func ValidateMilestones(ms []MilestoneConfig) error {
	seen := make(map[string]int, len(ms))
	for i, m := range ms {
		if strings.TrimSpace(m.Label) == "" {
			return fmt.Errorf("milestone %d: label is required", i)
		}
		if m.Date == "" {
			return fmt.Errorf("milestone %d (%s): date is required", i, m.Label)
		}
		if _, err := ParseDate(m.Date); err != nil {
			return fmt.Errorf("milestone %d (%s): %w", i, m.Label, err)
		}

		key := strings.ToLower(strings.TrimSpace(m.Label))
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("milestone %d (%s): duplicate label of milestone %d", i, m.Label, prev)
		}
		seen[key] = i
	}
	return nil
}

// ToMilestones converts config entries into domain milestones,
// preserving order. Labels are trimmed; dates must already validate.
func ToMilestones(ms []MilestoneConfig) ([]milestone.Milestone, error) {
	out := make([]milestone.Milestone, 0, len(ms))
	for i, m := range ms {
		date, err := ParseDate(m.Date)
		if err != nil {
			return nil, fmt.Errorf("milestone %d (%s): %w", i, m.Label, err)
		}
		out = append(out, milestone.Milestone{
			Label: strings.TrimSpace(m.Label),
			Date:  date,
		})
	}
	return out, nil
}

// SetMilestone adds a milestone, or updates the date of an existing one.
// An existing milestone is matched by its trimmed label; otherwise the
// new entry is appended, preserving the order of the rest.
func SetMilestone(ms []MilestoneConfig, label, date string) []MilestoneConfig {
	label = strings.TrimSpace(label)

	updated := make([]MilestoneConfig, len(ms))
	copy(updated, ms)

	for i, m := range updated {
		if strings.TrimSpace(m.Label) == label {
			updated[i].Date = date
			return updated
		}
	}
	return append(updated, MilestoneConfig{Label: label, Date: date})
}

// RemoveMilestone removes the milestone with the given label. The label
// comparison ignores case and leading/trailing whitespace. The second
// return value reports whether anything was removed.
func RemoveMilestone(ms []MilestoneConfig, label string) ([]MilestoneConfig, bool) {
	label = strings.ToLower(strings.TrimSpace(label))

	updated := make([]MilestoneConfig, 0, len(ms))
	removed := false
	for _, m := range ms {
		if strings.ToLower(strings.TrimSpace(m.Label)) == label {
			removed = true
			continue
		}
		updated = append(updated, m)
	}
	return updated, removed
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# achievements configuration
#
# Each milestone needs a label and a date. Dates are RFC 3339
# ("1969-07-20T20:17:40Z") or a plain day ("1969-07-20", midnight UTC).
#
# Manage entries with:
#   achievements set "My label" 2001-02-03
#   achievements remove "My label"

milestones:
  - label: Moon landing
    date: "1969-07-20T20:17:40Z"
  - label: Berlin Wall Fall
    date: "1989-11-09T18:53:00+01:00"
`
}

// WriteDefaultConfig writes the default config template to the given path.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
