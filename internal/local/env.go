package local

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

// Environ abstracts the ambient OS environment so platform-dependent
// behavior (home directory lookup, TTY detection, URL opener selection)
// can be tested without touching real process state.
type Environ interface {
	// Getenv returns the value of an environment variable, empty if unset.
	Getenv(key string) string
	// OS returns the host OS family identifier (runtime.GOOS values:
	// "linux", "darwin", "windows", ...).
	OS() string
	// StdinIsTerminal reports whether standard input is attached to a terminal.
	StdinIsTerminal() bool
	// StdoutIsTerminal reports whether standard output is attached to a terminal.
	StdoutIsTerminal() bool
}

// OSEnviron is the real-environment implementation of Environ.
type OSEnviron struct{}

// NewOSEnviron returns an Environ backed by the actual process environment.
func NewOSEnviron() *OSEnviron {
	return &OSEnviron{}
}

// Getenv returns the value of an environment variable.
func (e *OSEnviron) Getenv(key string) string {
	return os.Getenv(key)
}

// OS returns the running OS family.
func (e *OSEnviron) OS() string {
	return runtime.GOOS
}

// StdinIsTerminal reports whether stdin is a terminal (or Cygwin pty).
func (e *OSEnviron) StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdoutIsTerminal reports whether stdout is a terminal (or Cygwin pty).
func (e *OSEnviron) StdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
