// Package cmdexec abstracts external command execution for testability.
// Production code uses Commander interface; tests inject FakeCommander from testutil.
package cmdexec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// ErrSpawn is returned when a command could not be started at all
// (executable not found, permission denied, ...). A command that starts
// and exits non-zero is not an error.
var ErrSpawn = errors.New("명령을 실행할 수 없습니다")

// Outcome describes how an interactive command terminated.
type Outcome struct {
	// ExitCode is the child's exit status. -1 means it was killed by a signal.
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (o Outcome) Success() bool {
	return o.ExitCode == 0
}

// Commander abstracts external command execution.
type Commander interface {
	// Interactive runs a command attached to the caller's standard streams
	// and blocks until it exits. env is merged on top of the current process
	// environment; nil means inherit unchanged.
	Interactive(ctx context.Context, env map[string]string, name string, args ...string) (Outcome, error)

	// LookPath resolves an executable name the same way Interactive would.
	LookPath(name string) (string, error)
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Interactive executes the command using os/exec.CommandContext with
// stdin, stdout and stderr inherited from this process.
//
// SIGINT and SIGQUIT are caught while the child runs: the terminal delivers
// them to the child as well, and the wrapper has to outlive it.
func (c *RealCommander) Interactive(ctx context.Context, env map[string]string, name string, args ...string) (Outcome, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if env != nil {
		cmd.Env = append(os.Environ(), mapToEnvSlice(env)...)
	}

	if err := cmd.Start(); err != nil {
		return Outcome{}, fmt.Errorf("cmdexec.Interactive: %w: %s: %w", ErrSpawn, name, err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	err := cmd.Wait()
	if err == nil {
		return Outcome{ExitCode: 0}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Outcome{ExitCode: exitErr.ExitCode()}, nil
	}
	return Outcome{}, fmt.Errorf("cmdexec.Interactive: %s: %w", name, err)
}

// LookPath delegates to os/exec.LookPath.
func (c *RealCommander) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// mapToEnvSlice converts a map of environment variables to a slice of "KEY=VALUE" strings.
func mapToEnvSlice(env map[string]string) []string {
	if env == nil {
		return nil
	}
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}
