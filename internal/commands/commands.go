// Package commands wires the journal CLI.
package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/glabrego/journal-cli/internal/app"
	"github.com/glabrego/journal-cli/internal/config"
)

type rootOptions struct {
	configPath string
	poll       time.Duration
}

func (o *rootOptions) open(ctx context.Context) (*app.Env, error) {
	return app.Open(ctx, app.Options{ConfigPath: o.configPath, PollInterval: o.poll})
}

func New() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Browse your journal entries in the terminal.",
		Long: `Browse your journal entries in the terminal.

Without a subcommand the interactive view opens. It refreshes the list
every few seconds until you quit.`,
		Example: `
journal
journal --poll 30s
journal list
journal token set <token>
`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()
			return app.Run(cmd.Context(), env)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to the TOML config file")
	cmd.PersistentFlags().DurationVar(&opts.poll, "poll", 0, "refresh interval, overrides poll_interval")

	addList(cmd, opts)
	addToken(cmd, opts)
	return cmd
}
