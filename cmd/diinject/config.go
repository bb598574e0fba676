package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.cfg.ToTOML()
			if err != nil {
				return err
			}
			source := opts.cfg.Source
			if source == "" {
				source = MsgDefaultsSource
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigSource, source)
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
