package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingRootWarnsAndSucceeds(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	for _, sub := range []string{"ib", "strings", "locales"} {
		t.Run(sub, func(t *testing.T) {
			stdout, stderr, err := executeCommand(t, sub, missing, "--color", "never")

			require.NoError(t, err)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Warning: Search root cannot be read")
			assert.Contains(t, stderr, missing)
			assert.NotContains(t, stderr, "\x1b[")
		})
	}
}

func TestMissingRootJSONPrintsEmptyArray(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	stdout, _, err := executeCommand(t, "strings", missing, "--format", "json")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestRootIsAFile(t *testing.T) {
	root := newProjectTree(t, "Base.lproj/Main.storyboard")
	file := filepath.Join(root, "Base.lproj", "Main.storyboard")

	stdout, stderr, err := executeCommand(t, "ib", file)

	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "is not a directory")
}

func TestInvalidFlagValues(t *testing.T) {
	root := newProjectTree(t, "Base.lproj/Main.storyboard")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"format", []string{"ib", root, "--format", "xml"}, "invalid format"},
		{"color", []string{"ib", root, "--color", "sometimes"}, "invalid color"},
		{"log level", []string{"ib", root, "--log-level", "loud"}, "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, stdout)
		})
	}
}

func TestDebugLogGoesToStderr(t *testing.T) {
	root := newProjectTree(t, "Base.lproj/Main.storyboard")

	stdout, stderr, err := executeCommand(t, "ib", root, "--log-level", "debug", "--color", "never")

	require.NoError(t, err)
	assert.Equal(t, []string{"Base.lproj/Main.storyboard"}, outputLines(t, root, stdout))
	assert.Contains(t, stderr, "Searching interface-builder files in Base.lproj under "+root)
	assert.Contains(t, stderr, "Found 1 files")
	assert.Contains(t, stderr, "[DEBUG] interface-builder files in Base.lproj: 1 of 1 files matched")
}

func TestDefaultLogLevelIsQuiet(t *testing.T) {
	root := newProjectTree(t, "Base.lproj/Main.storyboard")

	_, stderr, err := executeCommand(t, "ib", root)

	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestConfigFileDiscoveredFromRoot(t *testing.T) {
	root := newProjectTree(t,
		"Base.lproj/Main.storyboard",
		"en.lproj/Main.storyboard",
	)
	configDir := filepath.Join(root, ".lprojfind")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"),
		[]byte("default_locale: en\nformat: yaml\n"), 0644))

	stdout, _, err := executeCommand(t, "ib", root)

	require.NoError(t, err)
	want := "- " + filepath.Join(root, "en.lproj", "Main.storyboard") + "\n"
	assert.Equal(t, want, stdout)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	root := newProjectTree(t, "Base.lproj/Main.storyboard")
	configFile := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("format: json\n"), 0644))

	stdout, _, err := executeCommand(t, "ib", root, "--config", configFile, "--format", "plain")

	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(stdout, "["), "expected plain output, got: %s", stdout)
	assert.Equal(t, []string{"Base.lproj/Main.storyboard"}, outputLines(t, root, stdout))
}

func TestExplicitConfigMissing(t *testing.T) {
	root := newProjectTree(t, "Base.lproj/Main.storyboard")

	_, _, err := executeCommand(t, "ib", root, "--config", filepath.Join(root, "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestColorAlwaysHighlightsLocaleFolders(t *testing.T) {
	root := newProjectTree(t, "Base.lproj/Main.storyboard")

	stdout, _, err := executeCommand(t, "ib", root, "--color", "always")

	require.NoError(t, err)
	assert.Contains(t, stdout, "\x1b[36mBase.lproj\x1b[0m")
}
