package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/penwyp/go-codebase-viz/internal/core/model"
	"github.com/penwyp/go-codebase-viz/internal/presentation/chart"
	"github.com/penwyp/go-codebase-viz/internal/presentation/dashboard"
	"github.com/penwyp/go-codebase-viz/internal/util"
)

// Artifact file names
const (
	DomainPieFile  = "domain_pie.png"
	MetricsBarFile = "metrics_bar.png"
	TimelineFile   = "evolution_timeline.png"
	DashboardFile  = "ascii_dashboard.txt"
)

type Config struct {
	OutputDir string
	// NoCharts skips PNG rendering as if charting were unavailable
	NoCharts bool
	Stdout   io.Writer
}

// ChartRenderer draws the image artifacts.
type ChartRenderer interface {
	Probe() error
	DomainPie(domains []model.Domain, totalProjects int, path string) error
	MetricsBar(bars []model.MetricBar, path string) error
	Timeline(phases []model.TimelinePhase, path string) error
}

type gonumCharts struct{}

func (gonumCharts) Probe() error { return chart.Probe() }

func (gonumCharts) DomainPie(domains []model.Domain, totalProjects int, path string) error {
	return chart.DomainPie(domains, totalProjects, path)
}

func (gonumCharts) MetricsBar(bars []model.MetricBar, path string) error {
	return chart.MetricsBar(bars, path)
}

func (gonumCharts) Timeline(phases []model.TimelinePhase, path string) error {
	return chart.Timeline(phases, path)
}

// OutputError reports an artifact that could not be written. It aborts the run.
type OutputError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write %s (%s): %v", e.Artifact, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

type Generator struct {
	config *Config
	report model.Report
	charts ChartRenderer
	notify *util.Notifier
	saved  []string
}

func New(config *Config, report model.Report) *Generator {
	return NewWithCharts(config, report, gonumCharts{})
}

// NewWithCharts creates a generator drawing images with the given renderer.
func NewWithCharts(config *Config, report model.Report, charts ChartRenderer) *Generator {
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	return &Generator{
		config: config,
		report: report,
		charts: charts,
		notify: util.NewNotifier(config.Stdout),
	}
}

// Saved lists the artifacts written by the last run, in order.
func (g *Generator) Saved() []string {
	return append([]string(nil), g.saved...)
}

// Run produces every artifact in turn. Missing charting support only skips
// the images; failing to write a file stops the run.
func (g *Generator) Run() error {
	g.saved = g.saved[:0]
	g.notify.Title("Generating visualizations...")
	g.notify.Plain("")

	if err := os.MkdirAll(g.config.OutputDir, 0755); err != nil {
		return &OutputError{Artifact: "output directory", Path: g.config.OutputDir, Err: err}
	}

	if err := g.renderCharts(); err != nil {
		return err
	}
	if err := g.renderDashboard(); err != nil {
		return err
	}

	g.notify.Plain("")
	g.notify.Success("Done! Visualizations generated.")
	util.LogInfo("Generation finished", util.F("artifacts", len(g.saved)), util.F("dir", g.config.OutputDir))
	return nil
}

func (g *Generator) renderCharts() error {
	if g.config.NoCharts {
		g.skipCharts(errors.New("disabled by flag"))
		return nil
	}
	if err := g.charts.Probe(); err != nil {
		g.skipCharts(err)
		return nil
	}

	steps := []struct {
		name   string
		render func(path string) error
	}{
		{DomainPieFile, func(path string) error {
			return g.charts.DomainPie(g.report.Domains, g.report.Metrics.Projects, path)
		}},
		{MetricsBarFile, func(path string) error {
			return g.charts.MetricsBar(model.MetricSeries(g.report.Metrics), path)
		}},
		{TimelineFile, func(path string) error {
			return g.charts.Timeline(g.report.Phases, path)
		}},
	}

	for _, step := range steps {
		path := filepath.Join(g.config.OutputDir, step.name)
		util.LogDebug("Rendering chart", util.F("artifact", step.name))

		if err := step.render(path); err != nil {
			if errors.Is(err, chart.ErrCapabilityUnavailable) {
				g.notify.Notice(fmt.Sprintf("Note: could not render %s, skipping", step.name))
				util.LogInfo("Chart skipped", util.F("artifact", step.name), util.F("reason", err.Error()))
				continue
			}
			return &OutputError{Artifact: step.name, Path: path, Err: err}
		}

		g.saved = append(g.saved, step.name)
		g.notify.Success("Saved: " + step.name)
	}
	return nil
}

func (g *Generator) skipCharts(reason error) {
	g.notify.Notice("Note: charting not available, skipping PNG generation")
	util.LogInfo("PNG generation skipped", util.F("reason", reason.Error()))
}

// renderDashboard prints the text dashboard and writes the same bytes to
// the dashboard file.
func (g *Generator) renderDashboard() error {
	text := dashboard.Render(g.report)
	path := filepath.Join(g.config.OutputDir, DashboardFile)

	if _, err := io.WriteString(g.config.Stdout, text); err != nil {
		return &OutputError{Artifact: "stdout", Path: "-", Err: err}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &OutputError{Artifact: DashboardFile, Path: path, Err: err}
	}

	g.saved = append(g.saved, DashboardFile)
	g.notify.Plain("")
	g.notify.Success("Saved: " + DashboardFile)
	return nil
}
