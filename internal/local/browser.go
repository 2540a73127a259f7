package local

import "fmt"

// urlOpeners maps an OS family to the command that hands a URL to the
// default browser.
var urlOpeners = map[string][]string{
	"linux":   {"xdg-open"},
	"darwin":  {"open"},
	"windows": {"cmd", "/C", "start", ""},
}

// OpenURL opens a URL in the default browser using the platform's opener
// command. An unrecognized OS fails before anything is spawned.
func (r *Runner) OpenURL(url string) error {
	opener, ok := urlOpeners[r.env.OS()]
	if !ok {
		return &UnsupportedPlatformError{OS: r.env.OS()}
	}

	args := append(append([]string{}, opener[1:]...), url)
	result, err := r.RunArgs(opener[0], args, nil)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("failed to open %s: opener exited with code %d", url, result.ExitCode)
	}
	return nil
}
