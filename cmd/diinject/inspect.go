package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/diinject/pkg/container"
	"github.com/arthur-debert/diinject/pkg/logging"
	"github.com/arthur-debert/diinject/pkg/style"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	var (
		format   string
		resolves int
	)

	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   MsgInspectShort,
		Long:    MsgInspectLong,
		Example: MsgInspectExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = opts.cfg.Output.Format
			}
			f, err := style.ParseFormat(format)
			if err != nil {
				return err
			}

			done := logging.LogOperationStart(logging.GetLogger("inspect"), "inspect")
			defer done()

			c := container.Shared()
			registerServices(c, cmd.ErrOrStderr())
			for i := 0; i < resolves; i++ {
				container.Resolve(c, LoggerKey)
				container.Resolve(c, RequestIDKey)
			}

			return style.RenderEntries(cmd.OutOrStdout(), c.Entries(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().IntVar(&resolves, "resolve", 1, MsgFlagResolve)

	return cmd
}
