package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trailhead-labs/issuetrack/internal/api"
	"github.com/trailhead-labs/issuetrack/internal/config"
	"github.com/trailhead-labs/issuetrack/internal/debug"
	"github.com/trailhead-labs/issuetrack/internal/telemetry"
)

var (
	jsonOutput  bool
	verboseFlag bool
	serverURL   string
)

var rootCmd = &cobra.Command{
	Use:   "issuetrack",
	Short: "issuetrack - Lightweight issue tracker with 4-digit IDs",
	Long:  `A small issue tracker: a JSON REST server, a terminal UI, and plain CLI commands, all sharing one validation ruleset.`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("issuetrack version %s (%s)\n", Version, Build)
			return
		}
		_ = cmd.Help() // Help() always returns nil for cobra commands
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetVerbose(verboseFlag)
		if err := telemetry.Init(cmd.Context(), "issuetrack", Version); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: telemetry init failed: %v\n", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(ctx); err != nil {
			debug.Logf("telemetry shutdown: %v", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Base URL of the issuetrack server")
	rootCmd.Flags().Bool("version", false, "Print version and exit")
}

// resolveServerURL resolves the client target.
// Priority: --server flag > ISSUETRACK_SERVER env > issuetrack.yaml > default.
func resolveServerURL() string {
	if serverURL != "" {
		return serverURL
	}
	settings, err := config.Load(viper.New())
	if err != nil {
		FatalError("%v", err)
	}
	return settings.Server
}

func newClient() *api.Client {
	return api.New(resolveServerURL())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
