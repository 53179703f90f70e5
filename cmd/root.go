package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goinertia/internal/config"
	"github.com/alexiusacademia/goinertia/internal/logging"
	"github.com/alexiusacademia/goinertia/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string

	// cfg and logger are set up before any subcommand runs.
	cfg    = config.Default()
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "goinertia",
	Short: "Composite section moments of inertia",
	Long: `goinertia - Composite Section Moments of Inertia

A CLI tool that computes the geometric properties of plane sections
built from simple figures (rectangles, circles, right triangles,
semicircles and quarter circles), with holes subtracted.

For every section it reports:
  - Total area and centroid
  - Second moments Ix, Iy and product of inertia Ixy
  - Principal moments I1, I2 and their directions
  - A step-by-step table of the Steiner transfer

Sections are read from JSON, YAML or XLSX files or entered interactively.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goinertia v%-45s║\n", version.Version)
		fmt.Println("  ║   Composite Section Moments of Inertia                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Area, centroid, Ix, Iy and Ixy of composite sections")
		fmt.Println("    • Principal moments and axes")
		fmt.Println("    • Holes, reference-point placement of figures")
		fmt.Println("    • PDF reports, XLSX export and section diagrams")
		fmt.Println("    • HTTP API (goinertia serve)")
		fmt.Println()
		fmt.Println("  Use 'goinertia --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level = logLevel
	}

	l, err := logging.New(logging.Options{
		Level:  loaded.Log.Level,
		Format: loaded.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	cfg, logger = loaded, l
	logger.Debug().Str("config", cfgFile).Msg("configuration loaded")
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .goinertia.yaml in . or $HOME)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
