// Package cli implements the clubs command: a terminal view of the club
// directory built on the same loader and engine as the API server.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/homesweetlove/club-of-dcu.io/internal/app"
	"github.com/homesweetlove/club-of-dcu.io/internal/config"
	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// loadTimeout bounds the wait for the one-shot data load.
const loadTimeout = 30 * time.Second

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	dataPath   string
	siteConfig string
	logLevel   string
	asOf       string
}

// NewRootCmd builds the clubs command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "clubs",
		Short: "Browse the club directory from the command line.",
		Long: `clubs loads the club data file (or the clubs table when DATABASE_URL is set)
and prints the same lists, badges and facets the web directory shows.

Environment variables are read exactly as by the API server; flags win.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.dataPath, "data", "", "data file path or http(s) URL (overrides DATA_PATH and the site config)")
	pf.StringVar(&opts.siteConfig, "site-config", "", "site settings YAML file (overrides SITE_CONFIG)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&opts.asOf, "as-of", "", "compute deadlines as of this date (YYYY-MM-DD) instead of today")

	root.AddCommand(newListCmd(opts), newShowCmd(opts), newFacetsCmd(opts))
	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// load resolves configuration, starts the directory and waits for its load.
// A failed load is returned as an error; the CLI has nothing to show.
func (o *globalOptions) load(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.dataPath != "" {
		cfg.DataPath = o.dataPath
	}
	if o.siteConfig != "" {
		cfg.SiteConfig = o.siteConfig
	}
	cfg.LogLevel = o.logLevel

	if o.asOf != "" {
		day, ok := domain.ParseCalendarDate(o.asOf, cfg.Location)
		if !ok {
			return nil, fmt.Errorf("--as-of: %q is not a YYYY-MM-DD date", o.asOf)
		}
		// Noon keeps day arithmetic clear of DST transitions at midnight.
		cfg.Clock = func() time.Time { return day.Add(12 * time.Hour) }
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()

	a, err := app.New(ctx, cfg, app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel))
	if err != nil {
		return nil, err
	}
	if err := a.Directory.Wait(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}
