package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/diinject/pkg/container"
	"github.com/arthur-debert/diinject/pkg/style"
)

const demoResolutions = 3

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Long:  MsgDemoLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(cmd.OutOrStdout(), container.Shared())
			return nil
		},
	}
}

func runDemo(w io.Writer, c *container.Container) {
	registerServices(c, w)

	fmt.Fprintln(w, style.Heading("Logger ("+style.ScopeLabel(container.Singleton)+")"))
	var first Logger
	for i := 1; i <= demoResolutions; i++ {
		logger, ok := container.Resolve(c, LoggerKey)
		if !ok {
			fmt.Fprintln(w, style.Notice(fmt.Sprintf(MsgServiceNotFound, "Logger")))
			break
		}
		same := MsgSameInstance
		switch {
		case first == nil:
			first = logger
			same = MsgFirstInstance
		case logger != first:
			same = MsgNewInstance
		}
		fmt.Fprintf(w, MsgResolveInstance, i, logger.InstanceID(), same)
	}
	if first != nil {
		first.Log(MsgLoggerGreeting)
	}

	fmt.Fprintln(w, style.Heading("RequestId ("+style.ScopeLabel(container.Transient)+")"))
	seen := map[string]bool{}
	for i := 1; i <= demoResolutions; i++ {
		id, ok := container.Resolve(c, RequestIDKey)
		if !ok {
			fmt.Fprintln(w, style.Notice(fmt.Sprintf(MsgServiceNotFound, "RequestId")))
			break
		}
		seen[id] = true
		fmt.Fprintf(w, MsgResolveValue, i, id)
	}
	fmt.Fprintln(w, style.Success(fmt.Sprintf(MsgDistinctValues, len(seen))))

	fmt.Fprintln(w, style.Heading("Unregistered"))
	if _, ok := container.Resolve(c, UnregisteredKey); !ok {
		fmt.Fprintln(w, style.Notice(MsgNotFound))
	}
}
