// Package main provides the footballgraph binary entry point.
// Footballgraph consumes a change-data-capture stream of relational row
// mutations and maintains a versioned semantic graph derived from them.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "footballgraph"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "CDC to semantic graph pipeline",
		Long: `Footballgraph keeps a versioned semantic graph in sync with a
relational football database via change-data-capture.

It consumes row-level mutation events from JetStream, maps them to
subject/predicate/object statements through a declarative entity-mapping
registry, validates them in stages, and commits each batch as an
immutable, provenance-tagged graph version.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(runCmd(&configPath, &logLevel))
	cmd.AddCommand(versionsCmd(&configPath, &logLevel))
	cmd.AddCommand(exportCmd(&configPath, &logLevel))
	cmd.AddCommand(mappingsCmd(&configPath, &logLevel))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
