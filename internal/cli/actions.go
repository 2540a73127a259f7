package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nimbushost/nimbus-cli/internal/common"
	"github.com/nimbushost/nimbus-cli/internal/config"
	"github.com/nimbushost/nimbus-cli/internal/platform"
)

// UpdateAliases downloads the server alias document from the platform API
// and writes the rendered ssh config block to the configured alias file,
// preserving anything outside the managed section.
func UpdateAliases(ctx *AppContext) error {
	token, err := ctx.Config.Get(config.KeyAPIToken)
	if err != nil {
		return fmt.Errorf("no API token stored; run 'nimbus login' first")
	}
	endpoint := ctx.Config.GetOrDefault(config.KeyAPIEndpoint, "")

	ctx.UI.Infof("Fetching server aliases from %s", endpoint)
	client := platform.NewClient(endpoint, token)
	doc, err := client.FetchAliases(context.Background())
	if err != nil {
		return err
	}

	aliasFile := ctx.Config.GetOrDefault(config.KeyAliasFile, "")

	existing, err := ctx.Runner.ReadFile(aliasFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := ctx.Runner.WriteFile(aliasFile, doc.Merge(existing)); err != nil {
		return err
	}

	ctx.UI.Successf("Wrote %d server aliases to %s", len(doc.Aliases), aliasFile)
	return nil
}

// OpenTarget opens a platform URL in the default browser. Target is either
// a well-known name (console, docs) or a full URL.
func OpenTarget(ctx *AppContext, target string) error {
	var url string
	switch {
	case target == "console":
		url = ctx.Config.GetOrDefault(config.KeyConsoleURL, "")
	case target == "docs":
		url = ctx.Config.GetOrDefault(config.KeyDocsURL, "")
	case strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://"):
		url = target
	default:
		return fmt.Errorf("unknown open target %q (expected console, docs, or a URL)", target)
	}

	ctx.UI.Infof("Opening %s", url)
	return ctx.Runner.OpenURL(url)
}

// Login stores the API endpoint and token, verifying them against the
// platform first. Empty arguments are prompted for interactively.
func Login(ctx *AppContext, endpoint, token string) error {
	if endpoint == "" {
		if ctx.UI.IsNonInteractive() {
			endpoint = ctx.Config.GetOrDefault(config.KeyAPIEndpoint, "")
		} else {
			var err error
			endpoint, err = ctx.UI.PromptInput("API endpoint", ctx.Config.GetOrDefault(config.KeyAPIEndpoint, ""))
			if err != nil {
				return err
			}
		}
	}
	if err := common.ValidateEndpoint(endpoint); err != nil {
		return err
	}

	if token == "" {
		if ctx.UI.IsNonInteractive() {
			return fmt.Errorf("an API token is required in non-interactive mode")
		}
		var err error
		token, err = ctx.UI.PromptPassword("API token")
		if err != nil {
			return err
		}
	}
	if err := common.ValidateNotEmpty(token); err != nil {
		return fmt.Errorf("API token cannot be empty")
	}

	client := platform.NewClient(endpoint, token)
	if err := client.Ping(context.Background()); err != nil {
		return err
	}

	if err := ctx.Config.Set(config.KeyAPIEndpoint, endpoint); err != nil {
		return fmt.Errorf("failed to store endpoint: %w", err)
	}
	if err := ctx.Config.Set(config.KeyAPIToken, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	ctx.UI.Successf("Logged in to %s", endpoint)
	return nil
}
