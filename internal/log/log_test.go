package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}

// The logger is a process-global guarded by sync.Once, so a single test
// exercises the whole init/write/filter path.
func TestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	Info(CatConfig, "Loaded config", "milestones", 2)
	ErrorErr(CatReport, "Skipping milestone", os.ErrNotExist, "label", "future")

	// Below min level entries are dropped.
	SetMinLevel(LevelWarn)
	Debug(CatClock, "should not appear")
	SetMinLevel(LevelDebug)

	// Disabled logger writes nothing.
	SetEnabled(false)
	Info(CatConfig, "also should not appear")
	SetEnabled(true)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "[INFO] [config] Loaded config milestones=2")
	require.Contains(t, content, "[ERROR] [report] Skipping milestone label=future")
	require.Contains(t, content, "error=file does not exist")
	require.NotContains(t, content, "should not appear")
}
