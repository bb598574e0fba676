package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/diinject/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, MsgVersionFormat, version.Version)
			fmt.Fprintf(w, MsgCommitFormat, version.Commit)
			fmt.Fprintf(w, MsgBuiltFormat, version.Date)
		},
	}
}
