package main

import (
	"github.com/danmuck/cbusctl/internal/logging"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "cbusctl.toml"

// configureLogging runs before every subcommand so codec debug lines honour
// the runtime level instead of zerolog's unconfigured default.
var configureLogging = logging.ConfigureRuntime

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "cbusctl",
		Short:         "CBUS/VLCB codec and bus monitor for GridConnect serial adapters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the TOML config")

	root.AddCommand(
		newMonitorCmd(opts),
		newDecodeCmd(),
		newEncodeCmd(opts),
		newOpcodesCmd(),
		newConfigCmd(opts),
		newPortsCmd(),
	)
	return root
}
