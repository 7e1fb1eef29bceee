package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-codebase-viz/internal/core/model"
	"github.com/penwyp/go-codebase-viz/internal/data/loader"
	"github.com/penwyp/go-codebase-viz/internal/generator"
	"github.com/penwyp/go-codebase-viz/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug     bool
	logFile   string
	logFormat string

	// Input and output
	outputDir string
	dataFile  string
	noCharts  bool
	watch     bool

	rootCmd = &cobra.Command{
		Use:   "go-codebase-viz [flags]",
		Short: "Render codebase statistics as charts and a text dashboard",
		Long: `go-codebase-viz renders a summary of codebase statistics: project counts per
domain, aggregate size metrics and the technology timeline.

Four artifacts are written to the output directory:
  domain_pie.png           share of projects per domain
  metrics_bar.png          aggregate metrics at a glance
  evolution_timeline.png   technology phases
  ascii_dashboard.txt      text dashboard, also printed to stdout

PNG rendering is skipped with a notice when charting is unavailable.

Examples:
  go-codebase-viz                                 # Built-in dataset, current directory
  go-codebase-viz --out ./artifacts               # Write into ./artifacts
  go-codebase-viz --data stats.yaml               # Override the dataset
  go-codebase-viz --data stats.yaml --watch       # Regenerate when stats.yaml changes
  go-codebase-viz --no-charts                     # Text dashboard only`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runGenerate,
	}
)

const defaultOutputDir = "."

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", defaultOutputDir,
		"Output directory for the generated artifacts")
	rootCmd.Flags().StringVar(&dataFile, "data", "",
		"YAML or JSON file overriding the built-in dataset")
	rootCmd.Flags().BoolVar(&noCharts, "no-charts", false,
		"Skip PNG rendering")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Regenerate whenever the --data file changes")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Append log entries to this file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(util.FormatText),
		"Log entry format (text, json)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if watch && dataFile == "" {
		return errors.New("--watch requires --data")
	}

	if err := initLogging(); err != nil {
		return err
	}
	defer util.CloseLogger()

	report, err := loadReport(dataFile)
	if err != nil {
		return err
	}

	config := &generator.Config{
		OutputDir: expandPath(outputDir),
		NoCharts:  noCharts,
		Stdout:    cmd.OutOrStdout(),
	}
	util.LogDebug("Starting generation", util.F("dir", config.OutputDir), util.F("data", dataFile))

	if err := generator.New(config, report).Run(); err != nil {
		return err
	}

	if !watch {
		return nil
	}
	return watchDataset(cmd.Context(), expandPath(dataFile), config)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func initLogging() error {
	format, err := util.ParseLogFormat(logFormat)
	if err != nil {
		return err
	}

	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	opts := util.LoggerOptions{
		Level:   logLevel,
		Console: debug,
		Format:  format,
	}
	if logFile != "" {
		opts.File = expandPath(logFile)
		if err := ensureDir(filepath.Dir(opts.File)); err != nil {
			return err
		}
	}
	return util.InitLogger(opts)
}

// loadReport returns the built-in dataset, or the one read from path.
func loadReport(path string) (model.Report, error) {
	if path == "" {
		return model.Default(), nil
	}
	return loader.Load(expandPath(path))
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
