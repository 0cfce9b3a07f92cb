// Package main provides the CLI entrypoint for courtline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/courtline/internal/config"
	"github.com/verte-zerg/courtline/internal/export"
	"github.com/verte-zerg/courtline/internal/loader"
	"github.com/verte-zerg/courtline/internal/matchui"
	"github.com/verte-zerg/courtline/internal/model"
	"github.com/verte-zerg/courtline/internal/stats"
	"github.com/verte-zerg/courtline/internal/store"
)

const (
	defaultResultsDir = "results"
	defaultPlotHeight = 10
)

var (
	matchDate string

	plotMetric string
	plotWidth  int
	plotHeight int
	plotColor  bool

	summaryOut string

	importDB string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "courtline",
		Short:         "Tennis match stats from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newPlotCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <source>",
		Short: "Compute the season summary and write summary.json",
		Args:  cobra.ExactArgs(1),
		RunE:  runSummaryCmd,
	}
	cmd.Flags().StringVar(&summaryOut, "out", "", "summary JSON path (default: <results-dir>/summary.json)")
	return cmd
}

func runSummaryCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	resultsDir := defaultResultsDir
	if fileCfg.Output.ResultsDir != nil {
		resultsDir = *fileCfg.Output.ResultsDir
	}

	history, err := loadHistory(args[0])
	if err != nil {
		return err
	}
	summary := stats.ComputeSummary(history)

	if err := stats.RenderSummary(os.Stdout, summary, history); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	outPath := summaryOut
	if outPath == "" {
		outPath = filepath.Join(resultsDir, "summary.json")
	}
	if err := export.WriteSummaryJSON(outPath, summary); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s\n", outPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <source>",
		Short: "Show computed metrics for a specific match date",
		Args:  cobra.ExactArgs(1),
		RunE:  runMatchCmd,
	}
	cmd.Flags().StringVar(&matchDate, "date", "", "match date (YYYY-MM-DD)")
	return cmd
}

func runMatchCmd(_ *cobra.Command, args []string) error {
	if matchDate == "" {
		return fmt.Errorf("--date is required")
	}
	date, err := loader.ParseDate(matchDate)
	if err != nil {
		return fmt.Errorf("invalid --date value: %w", err)
	}
	history, err := loadHistory(args[0])
	if err != nil {
		return err
	}
	rec, ok := stats.FindByDate(history, date)
	if !ok {
		return fmt.Errorf("no match found for date %s", date.Format(loader.DateLayout))
	}
	metrics := stats.ComputeMatchMetrics(rec)
	if err := stats.RenderMatch(os.Stdout, rec, metrics); err != nil {
		return fmt.Errorf("failed to render match: %w", err)
	}
	return nil
}

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <source>",
		Short: "Plot a metric over time in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlotCmd,
	}
	cmd.Flags().StringVar(&plotMetric, "metric", "", fmt.Sprintf("metric name (%s) or 'all'", strings.Join(stats.MetricNames(), ", ")))
	cmd.Flags().IntVar(&plotWidth, "width", 0, "plot width in cells (default: terminal width)")
	cmd.Flags().IntVar(&plotHeight, "height", defaultPlotHeight, "plot height in rows")
	cmd.Flags().BoolVar(&plotColor, "color", false, "force ANSI color output")
	return cmd
}

func runPlotCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "width", &plotWidth, fileCfg.Plot.Width)
	applyIntConfig(cmd, "height", &plotHeight, fileCfg.Plot.Height)
	applyBoolConfig(cmd, "color", &plotColor, fileCfg.Plot.Color)

	if plotMetric == "" {
		return fmt.Errorf("--metric is required")
	}
	history, err := loadHistory(args[0])
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return fmt.Errorf("no matches to plot")
	}

	metrics := []string{plotMetric}
	if plotMetric == "all" {
		metrics = stats.MetricNames()
	}
	series := make([]stats.Series, 0, len(metrics))
	for _, metric := range metrics {
		points, err := stats.MetricSeries(history, metric)
		if err != nil {
			return err
		}
		values := make([]float64, len(points))
		for i, p := range points {
			values[i] = p.Value
		}
		series = append(series, stats.Series{Name: stats.MetricLabel(metric), Values: values})
	}

	start := history[0].Date
	end := history[len(history)-1].Date
	title := "Metrics over time"
	if len(metrics) == 1 {
		title = fmt.Sprintf("%s over time", stats.MetricLabel(metrics[0]))
	}
	if err := stats.PlotRatesWithColor(os.Stdout, title, series, start, end, plotWidth, plotHeight, plotColor); err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <source>",
		Short: "List all matches with per-match rates",
		Args:  cobra.ExactArgs(1),
		RunE:  runListCmd,
	}
}

func runListCmd(_ *cobra.Command, args []string) error {
	history, err := loadHistory(args[0])
	if err != nil {
		return err
	}
	if err := stats.RenderMatchTable(os.Stdout, history); err != nil {
		return fmt.Errorf("failed to render matches: %w", err)
	}
	return nil
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <csv>",
		Short: "Import a CSV of matches into a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
	cmd.Flags().StringVar(&importDB, "db", "", "database path (default: XDG data dir)")
	return cmd
}

func runImportCmd(_ *cobra.Command, args []string) error {
	history, err := loader.LoadCSV(args[0])
	if err != nil {
		return err
	}

	dbPath := importDB
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if err := st.InsertMatches(context.Background(), history); err != nil {
		return fmt.Errorf("failed to import matches: %w", err)
	}
	logErrf("Imported %d matches into %s\n", len(history), dbPath)
	return nil
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <source>",
		Short: "Browse matches and season stats interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runBrowseCmd,
	}
}

func runBrowseCmd(_ *cobra.Command, args []string) error {
	history, err := loadHistory(args[0])
	if err != nil {
		return err
	}
	model := matchui.NewModel(history)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// loadHistory reads matches from a CSV file or a SQLite database, picked by
// extension. Both sources yield the same ordered history.
func loadHistory(source string) (model.History, error) {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".db", ".sqlite", ".sqlite3":
		st, err := store.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		return st.ListMatches(context.Background())
	default:
		return loader.LoadCSV(source)
	}
}

func applyIntConfig(cmd *cobra.Command, name string, target *int, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target *bool, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# courtline configuration
# Uncomment a value to enable it. CLI flags override config values.

[plot]
# width = 0        # Plot width in cells (0 = terminal width)
# height = %d      # Plot height in rows
# color = false    # Force ANSI color output

[output]
# results-dir = %q # Directory for summary.json
`,
		defaultPlotHeight,
		defaultResultsDir,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
