package local

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeDirectory returns the user's home directory. HOME wins; on hosts
// without it, HOMEPATH is consulted unless the environment looks like a
// MinGW shell (MSYSTEM starting with "MING"), where HOMEPATH points at the
// Windows profile rather than the emulated home.
func (r *Runner) HomeDirectory() (string, error) {
	if home := r.env.Getenv("HOME"); home != "" {
		return home, nil
	}

	msystem := r.env.Getenv("MSYSTEM")
	if len(msystem) >= 4 && strings.ToUpper(msystem[:4]) == "MING" {
		return "", &HomeDirectoryError{Detail: "HOME is unset in a MinGW environment"}
	}

	if home := r.env.Getenv("HOMEPATH"); home != "" {
		return home, nil
	}
	return "", &HomeDirectoryError{Detail: "neither HOME nor HOMEPATH is set"}
}

// FixFilename normalizes a path for the host OS: a leading ~ is replaced
// with the home directory and separators are converted and cleaned.
func (r *Runner) FixFilename(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := r.HomeDirectory()
		if err != nil {
			return "", err
		}
		path = home + path[1:]
	}
	return filepath.Clean(filepath.FromSlash(path)), nil
}

// ReadFile reads a file after path normalization.
func (r *Runner) ReadFile(path string) (string, error) {
	name, err := r.FixFilename(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", &FileAccessError{Op: "read", Path: name, Err: err}
	}
	return string(data), nil
}

// WriteFile writes content to a file after path normalization, creating
// parent directories as needed.
func (r *Runner) WriteFile(path, content string) error {
	name, err := r.FixFilename(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &FileAccessError{Op: "write", Path: name, Err: err}
		}
	}
	if err := os.WriteFile(name, []byte(content), 0600); err != nil {
		return &FileAccessError{Op: "write", Path: name, Err: err}
	}
	return nil
}
