package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glabrego/journal-cli/internal/format"
	"github.com/glabrego/journal-cli/internal/journal"
	"github.com/glabrego/journal-cli/internal/tui/actions"
)

const (
	previewColWidth = 60
	// fixedColsWidth approximates the id, date, time and title columns.
	fixedColsWidth = 62
)

func addList(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "fetch journals once and print them",
		Example: `
journal list
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), actions.FetchTimeout)
			defer cancel()
			entries, err := env.Service.Fetch(ctx)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), entries, env.Formatter)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func printEntries(w io.Writer, entries []journal.Entry, f format.Formatter) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No journals yet.")
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = columnWidth(w)
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Date"), bold.Sprint("Time"), bold.Sprint("Title"), bold.Sprint("Preview"))
	for i, entry := range entries {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			title = "(untitled)"
		}
		preview := strings.Join(strings.Fields(format.TruncateText(entry.Description, format.PreviewLength)), " ")
		tbl.AddRow(entry.Key(i), f.FormatDate(entry.EntryDate), f.FormatTime(entry.EntryTime), title, preview)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// columnWidth fits the widest column to the terminal when w is one.
func columnWidth(w io.Writer) uint {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return previewColWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width-fixedColsWidth < 20 {
		return previewColWidth
	}
	return uint(width - fixedColsWidth)
}
