// Package alias models the server alias document served by the platform
// API and renders it into an OpenSSH configuration block. The document is
// YAML; rendering produces a managed section delimited by markers so
// repeated updates replace rather than accumulate.
package alias

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nimbushost/nimbus-cli/internal/common"
)

// Markers delimiting the managed block inside the rendered file.
const (
	BeginMarker = "# --- BEGIN nimbus-cli managed aliases ---"
	EndMarker   = "# --- END nimbus-cli managed aliases ---"
)

// Alias describes one remote server shortcut.
type Alias struct {
	Name        string `yaml:"name"`
	Host        string `yaml:"host"`
	User        string `yaml:"user,omitempty"`
	Port        int    `yaml:"port,omitempty"`
	Project     string `yaml:"project,omitempty"`
	Environment string `yaml:"environment,omitempty"`
}

// Document is the alias document as served by the platform API.
type Document struct {
	Aliases []Alias `yaml:"aliases"`
}

// Parse decodes and validates an alias document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse alias document: %w", err)
	}
	for i := range doc.Aliases {
		if err := doc.Aliases[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid alias at index %d: %w", i, err)
		}
	}
	return &doc, nil
}

// Validate checks that an alias can be rendered into an ssh config entry.
func (a *Alias) Validate() error {
	if err := common.ValidateAliasName(a.Name); err != nil {
		return err
	}
	if err := common.ValidateHost(a.Host); err != nil {
		return err
	}
	if a.Port != 0 {
		if err := common.ValidatePort(a.Port); err != nil {
			return err
		}
	}
	return nil
}

// Render produces the managed OpenSSH config block for all aliases.
func (d *Document) Render() string {
	var b strings.Builder
	b.WriteString(BeginMarker + "\n")
	b.WriteString("# Updated by nimbus-cli; manual edits inside this block are overwritten.\n")
	for _, a := range d.Aliases {
		b.WriteString("\n")
		if a.Project != "" {
			comment := a.Project
			if a.Environment != "" {
				comment += " (" + a.Environment + ")"
			}
			fmt.Fprintf(&b, "# %s\n", comment)
		}
		fmt.Fprintf(&b, "Host %s\n", a.Name)
		fmt.Fprintf(&b, "    HostName %s\n", a.Host)
		if a.User != "" {
			fmt.Fprintf(&b, "    User %s\n", a.User)
		}
		if a.Port != 0 && a.Port != 22 {
			fmt.Fprintf(&b, "    Port %d\n", a.Port)
		}
	}
	b.WriteString("\n" + EndMarker + "\n")
	return b.String()
}

// Merge replaces the managed block inside existing content, or appends one
// if no block is present. Content outside the markers is preserved.
func (d *Document) Merge(existing string) string {
	rendered := d.Render()
	if existing == "" {
		return rendered
	}

	begin := strings.Index(existing, BeginMarker)
	end := strings.Index(existing, EndMarker)
	if begin == -1 || end == -1 || end < begin {
		if !strings.HasSuffix(existing, "\n") {
			existing += "\n"
		}
		return existing + "\n" + rendered
	}

	tail := existing[end+len(EndMarker):]
	tail = strings.TrimPrefix(tail, "\n")
	return existing[:begin] + rendered + tail
}
