package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/diinject/internal/version"
	"github.com/arthur-debert/diinject/pkg/config"
	"github.com/arthur-debert/diinject/pkg/container"
	"github.com/arthur-debert/diinject/pkg/logging"
	"github.com/arthur-debert/diinject/pkg/style"
)

// rootOptions is shared by every subcommand
type rootOptions struct {
	verbosity  int
	configPath string

	cfg *config.Config
}

// NewRootCmd builds the diinject command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "diinject",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			verbosity := cfg.Logging.Verbosity
			if opts.verbosity > verbosity {
				verbosity = opts.verbosity
			}
			logging.Setup(logging.Options{
				Verbosity: verbosity,
				File:      cfg.Logging.File,
				Console:   cmd.ErrOrStderr(),
			})

			// validated by config.Load
			mode, _ := style.ParseColorMode(cfg.Output.Color)
			out, _ := cmd.OutOrStdout().(*os.File)
			style.ApplyColor(style.ColorEnabled(mode, out))

			container.SetShared(container.New(cfg.ContainerOptions()...))

			log.Debug().
				Str("command", cmd.Name()).
				Str("config", cfg.Source).
				Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
