package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                     { return s.loggedIn }
func (s *stubExec) Register(context.Context) error       { return s.record("register") }
func (s *stubExec) Login(context.Context) error          { return s.record("login") }
func (s *stubExec) Logout(context.Context) error         { return s.record("logout") }
func (s *stubExec) List(context.Context) error           { return s.record("list") }
func (s *stubExec) Add(context.Context) error            { return s.record("add") }
func (s *stubExec) Toggle(context.Context) error         { return s.record("toggle") }
func (s *stubExec) Remove(context.Context) error         { return s.record("rm") }
func (s *stubExec) ClearCompleted(context.Context) error { return s.record("clear") }
func (s *stubExec) Stats(context.Context) error          { return s.record("stats") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = old })
	return &lines
}

func runWithInput(t *testing.T, stub *stubExec, input string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), stub, func() string { return "test" }, scanner)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{loggedIn: true}

	runWithInput(t, stub, "add\nlist\ntoggle\nrm\nclear\nstats\nlogout\nexit\n")

	assert.Equal(t, []string{"add", "list", "toggle", "rm", "clear", "stats", "logout"}, stub.calls)
}

func TestREPL_ListShorthand(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}

	runWithInput(t, stub, "l\nquit\n")

	assert.Equal(t, []string{"list"}, stub.calls)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	lines := captureOutput(t)
	stub := &stubExec{}

	runWithInput(t, stub, "frobnicate\nexit\n")

	assert.Empty(t, stub.calls)
	joined := strings.Join(*lines, "")
	assert.Contains(t, joined, "Unknown command: frobnicate")
}

func TestREPL_EmptyLinesIgnored(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}

	runWithInput(t, stub, "\n   \nexit\n")

	assert.Empty(t, stub.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := captureOutput(t)
	runWithInput(t, &stubExec{loggedIn: false}, "help\nexit\n")
	out := strings.Join(*lines, "")
	assert.Contains(t, out, "register, login")

	lines = captureOutput(t)
	runWithInput(t, &stubExec{loggedIn: true}, "help\nexit\n")
	out = strings.Join(*lines, "")
	assert.Contains(t, out, "stats, logout")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}

	runWithInput(t, stub, "list\n") // no exit; scanner hits EOF

	assert.Equal(t, []string{"list"}, stub.calls)
}
