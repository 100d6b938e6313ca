package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/haytac/emoji-filter/internal/alfred"
	"github.com/haytac/emoji-filter/internal/matcher"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points the command at a fixture dataset through the environment.
func setupTestConfig(t *testing.T, format string) {
	t.Helper()
	dir := t.TempDir()

	datasetPath := filepath.Join(dir, "emoji.json")
	require.NoError(t, os.WriteFile(datasetPath, []byte(`[
  {"emoji": "😄", "aliases": ["smile"], "tags": ["happy", "joy"]},
  {"emoji": "😂", "aliases": ["joy"], "tags": ["tears"]},
  {"emoji": "👍", "aliases": ["+1", "thumbsup"], "tags": ["approve", "ok"]},
  {"emoji": "👎", "aliases": ["-1", "thumbsdown"], "tags": ["disapprove", "bury"]}
]`), 0o644))

	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "images_root: /gemoji/images\n" +
		"dataset:\n  file: " + datasetPath + "\n" +
		"output:\n  format: " + format + "\n" +
		"log:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	t.Setenv(ConfigEnvVar, cfgPath)
	t.Cleanup(func() { AppCfg = nil })
}

// executeCommand runs root with args, returning stdout and stderr separately.
func executeCommand(root *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Matches(t *testing.T) {
	setupTestConfig(t, "structured")

	out, _, err := executeCommand(NewRootCmd(), "joy")
	require.NoError(t, err)

	var items alfred.Items
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items.Items, 2)
	assert.Equal(t, "smile", items.Items[0].Title)
	assert.Equal(t, "joy", items.Items[1].Title)
	assert.Equal(t, filepath.Join("/gemoji/images", "emoji", "unicode/1f604.png"), items.Items[0].Icon.Path)
	assert.Equal(t, "Copy :smile: to pasteboard", items.Items[0].Mods["ctrl"].Subtitle)
}

func TestRootCmd_LegacyFormat(t *testing.T) {
	setupTestConfig(t, "legacy")

	out, _, err := executeCommand(NewRootCmd(), "^thumbsup$")
	require.NoError(t, err)

	var items alfred.Items
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items.Items, 1)
	assert.Equal(t, "thumbsup, approve, ok", items.Items[0].Mods["ctrl"].Subtitle)
}

func TestRootCmd_NoMatches(t *testing.T) {
	setupTestConfig(t, "structured")

	out, _, err := executeCommand(NewRootCmd(), "nothing-here")
	require.NoError(t, err)
	assert.Equal(t, "{\"items\":[]}\n", out)
}

func TestRootCmd_InvalidPattern(t *testing.T) {
	setupTestConfig(t, "structured")

	out, _, err := executeCommand(NewRootCmd(), "*smile")
	require.Error(t, err)
	assert.True(t, matcher.IsInvalidPattern(err))
	assert.Empty(t, out)
}

func TestRootCmd_RequiresOneArg(t *testing.T) {
	setupTestConfig(t, "structured")

	out, _, err := executeCommand(NewRootCmd())
	assert.Error(t, err)
	assert.Empty(t, out)

	_, _, err = executeCommand(NewRootCmd(), "a", "b")
	assert.Error(t, err)
}

func TestRootCmd_BadConfig(t *testing.T) {
	t.Setenv(ConfigEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { AppCfg = nil })

	out, _, err := executeCommand(NewRootCmd(), "smile")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestRootCmd_DashArgumentsArePatterns(t *testing.T) {
	setupTestConfig(t, "structured")

	out, _, err := executeCommand(NewRootCmd(), "-1")
	require.NoError(t, err)
	var items alfred.Items
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items.Items, 1)
	assert.Equal(t, "-1", items.Items[0].Title)
	assert.Equal(t, ":-1:", items.Items[0].Mods["ctrl"].Arg)

	for _, query := range []string{"-h", "--help", "--"} {
		out, _, err := executeCommand(NewRootCmd(), query)
		require.NoError(t, err, query)
		assert.Equal(t, "{\"items\":[]}\n", out, query)
	}
}

func TestRootCmd_HelpMentionsTagDataset(t *testing.T) {
	long := NewRootCmd().Long
	assert.Contains(t, long, "dataset.file")
	assert.Contains(t, long, "tag")
}
