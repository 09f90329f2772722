package main

import (
	"github.com/spf13/cobra"

	"github.com/baskeboler/siteconfig"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the finalized site configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := siteconfig.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return siteconfig.Encode(cmd.OutOrStdout(), cfg, format)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json, toml, yaml")
	return cmd
}
