// Package local executes commands on the local machine and provides the
// small set of local-system helpers the CLI needs: TTY-aware process
// execution with an optional progress indicator, URL opening through the
// platform's opener command, and file access with home-directory
// normalization. Non-zero exit codes are returned as data, not errors;
// only failures to spawn, unsupported platforms, and I/O failures are
// reported as errors.
package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/kballard/go-shellquote"
)

// DefaultTimeout bounds every subprocess run by the runner.
const DefaultTimeout = 600 * time.Second

const (
	// exitStartFailure is reported when the subprocess never started.
	exitStartFailure = 127
	// exitTimeout is reported when the subprocess was killed at the deadline.
	exitTimeout = 124
)

// CommandResult is the outcome of a single execution call. Output holds
// what the command wrote to standard output (in TTY passthrough mode, to
// its terminal). ExitCode is always populated.
type CommandResult struct {
	Output   string
	ExitCode int
}

// TTYMode controls whether a subprocess gets interactive terminal streams.
type TTYMode int

const (
	// TTYAuto lets the runner decide from terminal attachment.
	TTYAuto TTYMode = iota
	// TTYForceOn requests a TTY; falls back to detection if stdout is redirected.
	TTYForceOn
	// TTYForceOff disables TTY passthrough.
	TTYForceOff
)

// OutputFunc receives output chunks as the subprocess produces them.
type OutputFunc func(chunk string)

type outputWriter func(string)

func (w outputWriter) Write(p []byte) (int, error) {
	w(string(p))
	return len(p), nil
}

// Runner executes local shell commands. Every call is independent and
// blocks until the subprocess completes or the timeout expires; the runner
// holds no state that crosses calls.
type Runner struct {
	env            Environ
	stdin          io.Reader
	stdout         io.Writer
	stderr         io.Writer
	timeout        time.Duration
	nonInteractive bool
	debug          bool
}

// New creates a Runner wired to the real process environment and streams.
func New() *Runner {
	return NewWithEnviron(NewOSEnviron())
}

// NewWithEnviron creates a Runner with a custom environment, used by tests
// to simulate arbitrary platforms.
func NewWithEnviron(env Environ) *Runner {
	return &Runner{
		env:     env,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		timeout: DefaultTimeout,
		debug:   env.Getenv("NIMBUS_DEBUG") == "1",
	}
}

// SetNonInteractive enables or disables non-interactive mode. When enabled,
// TTY passthrough is never used regardless of terminal attachment.
func (r *Runner) SetNonInteractive(enabled bool) {
	r.nonInteractive = enabled
}

// SetStreams overrides the standard streams (useful for testing).
func (r *Runner) SetStreams(stdin io.Reader, stdout, stderr io.Writer) {
	r.stdin = stdin
	r.stdout = stdout
	r.stderr = stderr
}

// Run executes a command line through the platform shell and captures its
// standard output. The callback, if non-nil, receives output as it arrives.
// Non-zero exits are returned in the result, not as errors.
func (r *Runner) Run(command string, callback OutputFunc) (CommandResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	r.trace(command)
	return r.runCapture(ctx, r.shellCommand(ctx, command), command, callback)
}

// RunArgs executes a program directly with an argument vector, bypassing
// the shell.
func (r *Runner) RunArgs(name string, args []string, callback OutputFunc) (CommandResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	commandLine := shellquote.Join(append([]string{name}, args...)...)
	r.trace(commandLine)
	return r.runCapture(ctx, exec.CommandContext(ctx, name, args...), commandLine, callback)
}

// RunInteractive executes a command line with optional TTY passthrough.
// The TTY decision is resolved once per call: non-interactive callers never
// get a TTY; TTYForceOn with redirected stdout falls back to detection.
// When a TTY is active and allowProgress is set, a progress indicator is
// driven on stderr in a poll cycle until the subprocess completes.
func (r *Runner) RunInteractive(command string, mode TTYMode, allowProgress bool, callback OutputFunc) (CommandResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	r.trace(command)
	cmd := r.shellCommand(ctx, command)

	if !r.useTTY(mode) {
		if !r.env.StdinIsTerminal() {
			// Piped input scenario: forward host stdin to the subprocess.
			cmd.Stdin = r.stdin
		}
		return r.runCapture(ctx, cmd, command, callback)
	}

	if allowProgress {
		return r.runWithProgress(ctx, cmd, command, callback)
	}
	// Output is already live on the terminal in pty mode, so the callback
	// only applies to the capturing paths.
	return r.runPTY(ctx, cmd, command)
}

// useTTY resolves the per-call TTY decision.
func (r *Runner) useTTY(mode TTYMode) bool {
	if r.nonInteractive || !r.env.StdinIsTerminal() {
		return false
	}
	switch mode {
	case TTYForceOff:
		return false
	case TTYForceOn:
		if r.env.StdoutIsTerminal() {
			return true
		}
		// Redirected stdout: leave it to detection below.
	}
	return r.env.StdoutIsTerminal()
}

// shellCommand builds a command that runs a full command line through the
// platform shell, so builtins and operators behave as typed.
func (r *Runner) shellCommand(ctx context.Context, command string) *exec.Cmd {
	if r.env.OS() == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "sh", "-c", command)
}

// runCapture starts the command, captures stdout into the result, and
// streams both stdout and stderr to the callback if one is given.
func (r *Runner) runCapture(ctx context.Context, cmd *exec.Cmd, commandLine string, callback OutputFunc) (CommandResult, error) {
	var buf bytes.Buffer
	var stdout io.Writer = &buf
	var stderr io.Writer = io.Discard
	if callback != nil {
		stdout = io.MultiWriter(&buf, outputWriter(callback))
		stderr = outputWriter(callback)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return CommandResult{ExitCode: exitStartFailure}, &StartError{Command: commandLine, Err: err}
	}

	code, err := r.waitStatus(ctx, cmd.Wait())
	return CommandResult{Output: buf.String(), ExitCode: code}, err
}

// runPTY runs the command on a pseudo-terminal so it behaves interactively,
// mirroring output to the host terminal while capturing it. Output captured
// this way includes anything the command wrote to stderr, since a pty
// merges the streams.
func (r *Runner) runPTY(ctx context.Context, cmd *exec.Cmd, commandLine string) (CommandResult, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return CommandResult{ExitCode: exitStartFailure}, &StartError{Command: commandLine, Err: err}
	}
	defer func() { _ = ptmx.Close() }()

	go func() { _, _ = io.Copy(ptmx, r.stdin) }()

	var buf bytes.Buffer
	// Returns when the subprocess exits and the pty closes.
	_, _ = io.Copy(io.MultiWriter(r.stdout, &buf), ptmx)

	code, err := r.waitStatus(ctx, cmd.Wait())
	return CommandResult{Output: buf.String(), ExitCode: code}, err
}

// runWithProgress starts the command immediately and drives a cyclical
// progress display on stderr, polling for completion on a single loop.
func (r *Runner) runWithProgress(ctx context.Context, cmd *exec.Cmd, commandLine string, callback OutputFunc) (CommandResult, error) {
	var buf bytes.Buffer
	var stdout io.Writer = &buf
	if callback != nil {
		stdout = io.MultiWriter(&buf, outputWriter(callback))
	}
	cmd.Stdout = stdout
	cmd.Stderr = io.Discard
	if !r.env.StdinIsTerminal() {
		cmd.Stdin = r.stdin
	}

	if err := cmd.Start(); err != nil {
		return CommandResult{ExitCode: exitStartFailure}, &StartError{Command: commandLine, Err: err}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	ind := newProgress(r.stderr)
	tick := time.NewTicker(progressInterval)
	defer tick.Stop()

	for {
		select {
		case waitErr := <-done:
			ind.clear()
			code, err := r.waitStatus(ctx, waitErr)
			return CommandResult{Output: buf.String(), ExitCode: code}, err
		case <-tick.C:
			ind.advance()
		}
	}
}

// waitStatus maps a Wait error to an exit code. Timeout expiry is surfaced
// as an error with code 124; any other non-zero exit is data.
func (r *Runner) waitStatus(ctx context.Context, waitErr error) (int, error) {
	if ctx.Err() == context.DeadlineExceeded {
		return exitTimeout, fmt.Errorf("command timed out after %s: %w", r.timeout, ctx.Err())
	}
	if waitErr == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, fmt.Errorf("failed to wait for command: %w", waitErr)
}

// trace prints the command line before spawning when NIMBUS_DEBUG=1.
func (r *Runner) trace(commandLine string) {
	if r.debug {
		fmt.Fprintf(r.stderr, "+ %s\n", commandLine)
	}
}
