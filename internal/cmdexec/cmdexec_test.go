package cmdexec

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell 필요")
	}
}

func TestInteractive_ZeroExit(t *testing.T) {
	skipOnWindows(t)

	c := &RealCommander{}
	out, err := c.Interactive(context.Background(), nil, "sh", "-c", "exit 0")
	require.NoError(t, err)
	assert.True(t, out.Success())
	assert.Equal(t, 0, out.ExitCode)
}

func TestInteractive_NonZeroExitIsNotError(t *testing.T) {
	skipOnWindows(t)

	c := &RealCommander{}
	out, err := c.Interactive(context.Background(), nil, "sh", "-c", "exit 3")
	require.NoError(t, err)
	assert.False(t, out.Success())
	assert.Equal(t, 3, out.ExitCode)
}

func TestInteractive_MissingExecutable(t *testing.T) {
	c := &RealCommander{}
	_, err := c.Interactive(context.Background(), nil, "unlocker-definitely-missing-binary")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpawn)
}

func TestInteractive_NotExecutable(t *testing.T) {
	skipOnWindows(t)

	path := filepath.Join(t.TempDir(), "script")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0600))

	c := &RealCommander{}
	_, err := c.Interactive(context.Background(), nil, path)
	assert.ErrorIs(t, err, ErrSpawn)
}

func TestInteractive_MergesEnv(t *testing.T) {
	skipOnWindows(t)

	out := filepath.Join(t.TempDir(), "env.txt")
	c := &RealCommander{}
	res, err := c.Interactive(context.Background(),
		map[string]string{"UNLOCKER_TEST_VALUE": "hello"},
		"sh", "-c", `printf %s "$UNLOCKER_TEST_VALUE" > "$1"`, "sh", out)
	require.NoError(t, err)
	require.True(t, res.Success())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLookPath(t *testing.T) {
	skipOnWindows(t)

	c := &RealCommander{}
	path, err := c.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = c.LookPath("unlocker-definitely-missing-binary")
	assert.Error(t, err)
}

func TestMapToEnvSlice(t *testing.T) {
	assert.Nil(t, mapToEnvSlice(nil))
	assert.Equal(t, []string{"A=1"}, mapToEnvSlice(map[string]string{"A": "1"}))
	assert.ElementsMatch(t, []string{"A=1", "B=two"}, mapToEnvSlice(map[string]string{"A": "1", "B": "two"}))
}
