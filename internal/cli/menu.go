package cli

import (
	"errors"
	"fmt"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Menu provides an interactive menu interface
type Menu struct {
	ctx *AppContext
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *AppContext) *Menu {
	return &Menu{ctx: ctx}
}

var menuEntries = []struct {
	label  string
	action func(*AppContext) error
}{
	{"Update server aliases", UpdateAliases},
	{"Open web console", func(ctx *AppContext) error { return OpenTarget(ctx, "console") }},
	{"Open documentation", func(ctx *AppContext) error { return OpenTarget(ctx, "docs") }},
	{"Log in to the platform", func(ctx *AppContext) error { return Login(ctx, "", "") }},
	{"Exit", func(*AppContext) error { return ErrExit }},
}

// Show displays the main menu and dispatches the chosen action until the
// user exits.
func (m *Menu) Show() error {
	m.ctx.UI.Header("Nimbus CLI")
	m.ctx.UI.Info("Helper tool for the Nimbus hosting platform.")

	options := make([]string, len(menuEntries))
	for i, entry := range menuEntries {
		options[i] = entry.label
	}

	for {
		idx, err := m.ctx.UI.PromptSelect("What would you like to do?", options)
		if err != nil {
			return err
		}

		if err := menuEntries[idx].action(m.ctx); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(fmt.Sprintf("%v", err))
		}
	}
}
