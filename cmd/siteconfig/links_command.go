package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newLinksCommand(ctx *commandContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "links",
		Short: "List the author's social links in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(cfg.UserLinks) == 0 {
				fmt.Fprintln(out, "No user links configured")
				return nil
			}

			rows := make([][]string, 0, len(cfg.UserLinks))
			for i, l := range cfg.UserLinks {
				rows = append(rows, []string{fmt.Sprintf("%d", i+1), l.Label, l.URL, l.IconClassName})
			}

			if plain || !isTerminal(out) {
				for _, r := range rows {
					fmt.Fprintf(out, "%s\t%s\t%s\n", r[1], r[2], r[3])
				}
				return nil
			}
			headers := []string{"#", "Label", "URL", "Icon"}
			aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print tab-separated rows instead of a table")
	return cmd
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
