// Package cli provides the command-line interface layer for the nimbus
// tool: shared application context, the actions behind each command, and
// the interactive menu shown when the tool runs without arguments.
package cli

import (
	"fmt"

	"github.com/nimbushost/nimbus-cli/internal/config"
	"github.com/nimbushost/nimbus-cli/internal/local"
	"github.com/nimbushost/nimbus-cli/internal/ui"
)

// AppContext holds all dependencies needed by commands
type AppContext struct {
	Config *config.Config
	UI     *ui.UI
	Runner *local.Runner
}

// NewAppContext creates a new AppContext with all dependencies initialized
func NewAppContext() (*AppContext, error) {
	return NewAppContextWithOptions(false)
}

// NewAppContextWithOptions creates a new AppContext with custom options
func NewAppContextWithOptions(nonInteractive bool) (*AppContext, error) {
	cfg := config.New("")
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)

	runner := local.New()
	runner.SetNonInteractive(nonInteractive)

	return &AppContext{
		Config: cfg,
		UI:     uiInstance,
		Runner: runner,
	}, nil
}
