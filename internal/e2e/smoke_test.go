package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runSortcell(t, binaryPath, home, "layout", "init")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "layout.toml")

	stdout, stderr, err = runSortcell(t, binaryPath, home, "run", "--sim", "--cycles", "1", "--seed", "11")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Batch 1 ->")
	assert.Contains(t, stdout, "cycles: 1")
}

func TestSmokeFailsWithoutSimulator(t *testing.T) {
	binaryPath := buildBinary(t)

	_, stderr, err := runSortcell(t, binaryPath, t.TempDir(), "run", "--sim=false")
	require.Error(t, err)
	assert.Contains(t, stderr, "no hardware workcell driver")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "sortcell-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/sortcell")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build sortcell binary: %s", string(output))
	return binaryPath
}

func runSortcell(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
