package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glabrego/journal-cli/internal/credential"
)

func addToken(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "manage the stored session token",
	}

	setCmd := &cobra.Command{
		Use:   "set <token>",
		Short: "store the session token used for requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()
			if err := env.Tokens.Save(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token saved.")
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "remove the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()
			if err := env.Tokens.Clear(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token cleared.")
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "report where the session token comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			out := cmd.OutOrStdout()
			if _, err := credential.Static(env.Config.Token).Token(cmd.Context()); err == nil {
				_, _ = fmt.Fprintln(out, "Logged in (JOURNAL_TOKEN).")
				return nil
			}
			_, err = env.Tokens.Token(cmd.Context())
			switch {
			case err == nil:
				_, _ = fmt.Fprintln(out, "Logged in (stored token).")
			case errors.Is(err, credential.ErrNotFound):
				_, _ = fmt.Fprintln(out, "Not logged in.")
			default:
				return err
			}
			return nil
		},
	}

	cmd.AddCommand(setCmd, clearCmd, statusCmd)
	topLevel.AddCommand(cmd)
}
