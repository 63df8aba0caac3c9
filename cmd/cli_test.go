package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/sortcell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestRunSimPrintsBatchReport(t *testing.T) {
	stdout, stderr, err := executeCLI(t, t.TempDir(), "run", "--sim", "--cycles", "1", "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Batch 1 -> Bin0")
	assert.Contains(t, stdout, "next: Bin0")
	assert.Contains(t, stdout, "Sortcell Run")
	assert.Contains(t, stdout, "cycles: 1")
	assert.Contains(t, stderr, "run finished")
}

func TestRunJSONOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "run", "--cycles", "2", "--seed", "7", "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var out runOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 2, out.Summary.Cycles)
	require.Len(t, out.Batches, 2)
	assert.Equal(t, 1, out.Batches[0].Cycle)
	assert.Equal(t, out.Summary.RunID, out.Batches[1].RunID)
	assert.NotEmpty(t, out.Summary.RunID)
}

func TestRunSameSeedSameBatches(t *testing.T) {
	home := t.TempDir()

	first, _, err := executeCLI(t, home, "run", "--cycles", "3", "--seed", "99", "--json")
	require.NoError(t, err)
	second, _, err := executeCLI(t, home, "run", "--cycles", "3", "--seed", "99", "--json")
	require.NoError(t, err)

	var a, b runOutput
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	require.Len(t, b.Batches, len(a.Batches))
	for i := range a.Batches {
		assert.Equal(t, a.Batches[i].Items, b.Batches[i].Items)
		assert.Equal(t, a.Batches[i].Next, b.Batches[i].Next)
	}
}

func TestRunWithoutSimFails(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "run", "--sim=false")
	require.ErrorIs(t, err, errNoHardwareDriver)
}

func TestRunRejectsNegativeCycles(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "run", "--cycles", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--cycles must not be negative")
}

func TestRunHonorsLogConfigFromEnv(t *testing.T) {
	t.Setenv("SORTCELL_LOG_FORMAT", "json")

	_, stderr, err := executeCLI(t, t.TempDir(), "run", "--cycles", "1", "--seed", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.NotEmpty(t, lines)

	runIDs := map[string]bool{}
	messages := map[string]bool{}
	for _, line := range lines {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record), "log line: %s", line)
		runID, _ := record["run_id"].(string)
		require.NotEmpty(t, runID, "log line without run_id: %s", line)
		runIDs[runID] = true
		messages[record["msg"].(string)] = true
	}

	assert.Len(t, runIDs, 1)
	assert.True(t, messages["run started"])
	assert.True(t, messages["container loaded"])
	assert.True(t, messages["transferring containers"])
}

func TestRunRejectsUnknownLogFormat(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "[log]\nformat = \"xml\"\n"))

	_, _, err := executeCLI(t, home, "run", "--cycles", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestHomeReturnsCarrier(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "home", "--from", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "carrier at home (position 8.000")
	assert.Regexp(t, `\(position 8\.000, [1-9][0-9]* line ticks, `, stdout)
}

func TestLayoutShowDefaults(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "layout", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "source: built-in defaults")
	assert.Contains(t, stdout, "Bin04 (crossing)")
}

func TestLayoutInitThenShow(t *testing.T) {
	home := t.TempDir()
	layoutPath := filepath.Join(home, ".sortcell", "layout.toml")

	stdout, _, err := executeCLI(t, home, "layout", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+layoutPath)
	assert.FileExists(t, layoutPath)

	stdout, _, err = executeCLI(t, home, "layout", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "source: "+layoutPath)

	_, _, err = executeCLI(t, home, "layout", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCLI(t, home, "layout", "init", "--force")
	require.NoError(t, err)
}

func TestLayoutPathFromConfigSuggestsBinNames(t *testing.T) {
	home := t.TempDir()
	layoutPath := filepath.Join(home, "cell", "layout.toml")
	require.NoError(t, writeConfigFixture(home, "[layout]\npath = \""+filepath.ToSlash(layoutPath)+"\"\n"))
	require.NoError(t, os.MkdirAll(filepath.Dir(layoutPath), 0o755))
	require.NoError(t, os.WriteFile(layoutPath, []byte("version = 1\nbins = [\"Dock\", \"Paper\", \"Glass\", \"Bin4\"]\n"), 0o644))

	_, _, err := executeCLI(t, home, "layout", "show")
	require.ErrorIs(t, err, domain.ErrUnknownBin)
	assert.Contains(t, err.Error(), `did you mean "Bin4"?`)
}

func TestProfileShowBuiltin(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dump Profile: dump.txt")
	assert.Contains(t, stdout, "max angle: 60.0")
}

func TestProfileImportThenShow(t *testing.T) {
	home := t.TempDir()
	source := filepath.Join(t.TempDir(), "recorded.txt")
	require.NoError(t, os.WriteFile(source, []byte("# gentle tilt\n0 0\n1.5 30\n3 50\n"), 0o644))

	stdout, _, err := executeCLI(t, home, "profile", "import", source, "--name", "gentle.txt")
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported gentle.txt (3 points, 3s)")
	assert.FileExists(t, filepath.Join(home, ".sortcell", "profiles", "gentle.txt"))

	stdout, _, err = executeCLI(t, home, "profile", "show", "gentle.txt")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dump Profile: gentle.txt")
	assert.Contains(t, stdout, "points: 3")
}

func TestProfileImportRejectsMalformedFile(t *testing.T) {
	source := filepath.Join(t.TempDir(), "broken.txt")
	require.NoError(t, os.WriteFile(source, []byte("0 0\n1 north\n"), 0o644))

	_, _, err := executeCLI(t, t.TempDir(), "profile", "import", source)
	require.ErrorIs(t, err, domain.ErrMalformedProfile)
}

func TestProfileShowUnknownName(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "profile", "show", "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestRunUsesImportedProfileFromConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "[profile]\nname = \"steep.txt\"\n"))

	source := filepath.Join(t.TempDir(), "steep.txt")
	require.NoError(t, os.WriteFile(source, []byte("0 0\n0.5 90\n"), 0o644))
	_, _, err := executeCLI(t, home, "profile", "import", source)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "run", "--cycles", "1", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Batch 1 ->")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "pool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"pool\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home, content string) error {
	configDir := filepath.Join(home, ".sortcell")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644)
}
