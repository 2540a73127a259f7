package local

import "fmt"

// StartError indicates the subprocess could not be spawned at all
// (missing executable, permission denied). A process that started and
// exited non-zero is not a StartError; that exit code is returned as data.
type StartError struct {
	Command string
	Err     error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start command %q: %v", e.Command, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// UnsupportedPlatformError indicates no URL opener is known for the host OS.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("no known URL opener for platform %q", e.OS)
}

// FileAccessError indicates a read or write failure on the local filesystem.
type FileAccessError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// HomeDirectoryError indicates the user's home directory could not be
// determined from the environment.
type HomeDirectoryError struct {
	Detail string
}

func (e *HomeDirectoryError) Error() string {
	return fmt.Sprintf("unable to determine home directory: %s", e.Detail)
}
