package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/trailhead-labs/issuetrack/internal/config"
	"github.com/trailhead-labs/issuetrack/internal/server"
	"github.com/trailhead-labs/issuetrack/internal/store"
)

var (
	serveListen string
	serveSeed   string
	serveNoSeed bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the issue tracker API server",
	Long: `Start the JSON REST server that backs the terminal UI and the CLI commands.

The server keeps issues in memory and starts with two sample issues unless
--no-seed or a --seed file says otherwise. It shuts down gracefully on
SIGINT/SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Address to listen on (host:port)")
	serveCmd.Flags().StringVar(&serveSeed, "seed", "", "Path to a yaml file with initial issues")
	serveCmd.Flags().BoolVar(&serveNoSeed, "no-seed", false, "Start with an empty store")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command) {
	settings, err := config.Load(viper.New())
	if err != nil {
		FatalError("%v", err)
	}
	// Flags beat config file and environment.
	if cmd.Flags().Changed("listen") {
		settings.Listen = serveListen
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = serveSeed
	}
	if serveNoSeed {
		settings.NoSeed = true
	}

	st, err := buildStore(settings)
	if err != nil {
		FatalError("%v", err)
	}

	srv := server.New(st, settings.Listen)

	fmt.Printf("issuetrack server listening on %s\n", settings.Listen)
	fmt.Printf("Press Ctrl+C to stop\n")

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return srv.Start(ctx)
	})
	if err := g.Wait(); err != nil {
		FatalError("server error: %v", err)
	}
}

func buildStore(settings config.Settings) (*store.Store, error) {
	switch {
	case settings.NoSeed:
		return store.New(), nil
	case settings.Seed != "":
		issues, err := config.LoadSeed(settings.Seed)
		if err != nil {
			return nil, err
		}
		return store.NewSeeded(issues)
	default:
		return store.NewSeeded(config.DefaultSeed())
	}
}
