package hook_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hbjs97/unlocker/internal/cmdexec"
	"github.com/hbjs97/unlocker/internal/hook"
	"github.com/hbjs97/unlocker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(fc *testutil.FakeCommander) (*hook.Runner, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return &hook.Runner{Commander: fc, Logger: log.New(buf)}, buf
}

func TestRun_EmptyArgvIsNoop(t *testing.T) {
	fc := testutil.NewFakeCommander()
	r, buf := newRunner(fc)

	out, err := r.Run(context.Background(), hook.PhaseBefore, "vpn", nil)
	require.NoError(t, err)
	assert.True(t, out.Success())
	assert.Empty(t, fc.Calls)
	assert.Empty(t, buf.String())

	out, err = r.Run(context.Background(), hook.PhaseAfter, "vpn", []string{})
	require.NoError(t, err)
	assert.True(t, out.Success())
	assert.Empty(t, fc.Calls)
}

func TestRun_SplitsExecutableAndArgs(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("echo unlocking now", 0, nil)
	r, _ := newRunner(fc)

	out, err := r.Run(context.Background(), hook.PhaseBefore, "work", []string{"echo", "unlocking", "now"})
	require.NoError(t, err)
	assert.True(t, out.Success())
	assert.Equal(t, []string{"echo unlocking now"}, fc.Calls)
	assert.Nil(t, fc.EnvCalls[0])
}

func TestRun_LogsBeforeSpawning(t *testing.T) {
	fc := testutil.NewSucceedingCommander()
	r, buf := newRunner(fc)

	_, err := r.Run(context.Background(), hook.PhaseAfter, "work", []string{"pass", "lock"})
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "[after]")
	assert.Contains(t, logged, "profile=work")
	assert.Contains(t, logged, "pass lock")
}

func TestRun_NonZeroExitIsOutcome(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("false", 1, nil)
	r, _ := newRunner(fc)

	out, err := r.Run(context.Background(), hook.PhaseBefore, "work", []string{"false"})
	require.NoError(t, err)
	assert.False(t, out.Success())
	assert.Equal(t, 1, out.ExitCode)
}

func TestRun_SpawnErrorPropagates(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("missing", 0, fmt.Errorf("wrap: %w", cmdexec.ErrSpawn))
	r, _ := newRunner(fc)

	_, err := r.Run(context.Background(), hook.PhaseBefore, "work", []string{"missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cmdexec.ErrSpawn)
	assert.Contains(t, err.Error(), "work")
}
