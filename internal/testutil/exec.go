package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/unlocker/internal/cmdexec"
)

// Response represents a pre-configured command response for FakeCommander.
type Response struct {
	ExitCode int
	Err      error
}

// FakeCommander returns pre-configured responses for testing.
// Responses are keyed by "name arg1 arg2 ..." format.
// If no exact match is found, it tries prefix matching.
type FakeCommander struct {
	// Responses maps command strings to their responses.
	// Key format: "command arg1 arg2" (e.g., "echo unlocking", "/bin/zsh")
	Responses map[string]Response

	// Calls records all commands that were executed, in order.
	Calls []string

	// EnvCalls records the environment variable maps passed to Interactive, in order.
	EnvCalls []map[string]string

	// Paths maps executable names to the path LookPath returns.
	// Names missing from Paths fail to resolve.
	Paths map[string]string

	// DefaultResponse is returned when no matching response is found.
	// If nil, an error is returned for unmatched commands.
	DefaultResponse *Response
}

var _ cmdexec.Commander = (*FakeCommander)(nil)

// NewFakeCommander creates a FakeCommander with empty response and path maps.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Responses: make(map[string]Response),
		Paths:     make(map[string]string),
	}
}

// NewSucceedingCommander creates a FakeCommander whose unmatched commands exit 0.
func NewSucceedingCommander() *FakeCommander {
	c := NewFakeCommander()
	c.DefaultResponse = &Response{}
	return c
}

// Register adds a response for the given command key.
func (c *FakeCommander) Register(key string, exitCode int, err error) {
	c.Responses[key] = Response{
		ExitCode: exitCode,
		Err:      err,
	}
}

// Interactive looks up the command in Responses and returns the matching outcome.
func (c *FakeCommander) Interactive(_ context.Context, env map[string]string, name string, args ...string) (cmdexec.Outcome, error) {
	fullCmd := name
	if len(args) > 0 {
		fullCmd = name + " " + strings.Join(args, " ")
	}

	c.Calls = append(c.Calls, fullCmd)
	c.EnvCalls = append(c.EnvCalls, env)

	// Exact match first.
	if resp, ok := c.Responses[fullCmd]; ok {
		return cmdexec.Outcome{ExitCode: resp.ExitCode}, resp.Err
	}

	// Try prefix matching (longest prefix wins).
	bestKey := ""
	for key := range c.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		resp := c.Responses[bestKey]
		return cmdexec.Outcome{ExitCode: resp.ExitCode}, resp.Err
	}

	if c.DefaultResponse != nil {
		return cmdexec.Outcome{ExitCode: c.DefaultResponse.ExitCode}, c.DefaultResponse.Err
	}

	return cmdexec.Outcome{}, fmt.Errorf("FakeCommander: no response registered for %q", fullCmd)
}

// LookPath resolves name through Paths.
func (c *FakeCommander) LookPath(name string) (string, error) {
	if p, ok := c.Paths[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("FakeCommander: %q not found in Paths", name)
}

// Called returns true if a command matching the given prefix was executed.
func (c *FakeCommander) Called(prefix string) bool {
	return c.Index(prefix) >= 0
}

// CallCount returns the number of times a command matching the given prefix was executed.
func (c *FakeCommander) CallCount(prefix string) int {
	count := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}

// Index returns the position in Calls of the first command matching prefix, or -1.
func (c *FakeCommander) Index(prefix string) int {
	for i, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			return i
		}
	}
	return -1
}
