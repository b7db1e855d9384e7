package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/desdiag/appconfig"
)

// env writes a config pointing storage at a temp dir and returns its path.
func env(t *testing.T) (configPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	configPath = filepath.Join(dir, "desdiag.yaml")
	doc := fmt.Sprintf("storage:\n  automata_dir: %s\n  logs_dir: %s\nlogging:\n  level: warn\n",
		filepath.Join(dir, "automata"), filepath.Join(dir, "logs"))
	require.NoError(t, os.WriteFile(configPath, []byte(doc), 0o644))
	return configPath, dir
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCLI_BuildInspectSample(t *testing.T) {
	cfgPath, dir := env(t)

	out, _, err := run(t, "build", "--config", cfgPath, "--seed", "3", "--min", "11", "--max", "20", "--name", "a.dfa")
	require.NoError(t, err)
	assert.Contains(t, out, "saved: "+filepath.Join(dir, "automata", "a.dfa"))
	assert.Contains(t, out, "states: ")

	out, _, err = run(t, "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "a.dfa\n", out)

	out, _, err = run(t, "info", "--config", cfgPath, "a.dfa")
	require.NoError(t, err)
	assert.Contains(t, out, "root: 0")
	assert.Contains(t, out, "unreachable: []")

	out, _, err = run(t, "check", "--config", cfgPath, "a.dfa")
	require.NoError(t, err)
	assert.Regexp(t, `diagnosable: (true|false)`, out)
	assert.Contains(t, out, "observer: ")

	out, _, err = run(t, "sample", "--config", cfgPath, "--size", "5", "--min-steps", "5", "--max-steps", "10", "--seed", "1", "a.dfa")
	require.NoError(t, err)
	assert.Contains(t, out, "Logs size: 5")
	_, err = os.Stat(filepath.Join(dir, "logs", "a_running-logs.txt"))
	assert.NoError(t, err)

	_, _, err = run(t, "check", "--config", cfgPath, "--pairing", "both", "a.dfa")
	assert.Error(t, err)
	_, _, err = run(t, "check", "--config", cfgPath, "missing.dfa")
	assert.Error(t, err)
}

func TestCLI_EGR(t *testing.T) {
	cfgPath, dir := env(t)

	out, _, err := run(t, "egr", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "root 2 diagnosable: false\n", out)

	out, _, err = run(t, "egr", "--config", cfgPath, "--root", "1", "--logs", "5", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "root 1 diagnosable: true")
	assert.Contains(t, out, "Logs size: 5")
	_, err = os.Stat(filepath.Join(dir, "logs", "egr-system_running-logs.txt"))
	assert.NoError(t, err)

	_, _, err = run(t, "egr", "--config", cfgPath, "--root", "9")
	assert.Error(t, err)
}

func TestCLI_MetricsAndConfig(t *testing.T) {
	cfgPath, _ := env(t)

	_, stderr, err := run(t, "build", "--config", cfgPath, "--seed", "1", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, `desdiag_builds_total{mode="single",status="ok"} 1`)

	_, _, err = run(t, "list", "--config", cfgPath, "--log-level", "loud")
	assert.ErrorIs(t, err, appconfig.ErrInvalid)

	_, _, err = run(t, "build", "--config", cfgPath, "--min", "5")
	assert.Error(t, err)
}
