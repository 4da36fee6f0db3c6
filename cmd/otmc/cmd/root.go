package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceMultichannel/internal/logging"
)

var (
	// Global flags
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "otmc",
	Short: "OpenTrace Multichannel - EasyEDA channel merger",
	Long: `OpenTrace Multichannel (otmc) places several copies of a channel design
into one EasyEDA schematic and PCB. Every copy gets its own references, net
names and unique ids, and its PCB shapes are moved by the channel offset.

Examples:
  otmc merge -c project.yaml          # Merge the channels of a project
  otmc info amp_pcb.json              # Shape counts and board extent
  otmc dump amp.json -o amp.txt       # List every shape field by field`,
	Version:       "0.9.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
