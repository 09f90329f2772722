package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baskeboler/siteconfig"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report questionable configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			warnings := siteconfig.Lint(cfg)
			if len(warnings) == 0 {
				fmt.Fprintln(out, "Configuration OK")
				return nil
			}
			for _, w := range warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			if strict {
				return fmt.Errorf("%d configuration warning(s)", len(warnings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any warning is reported")
	return cmd
}
