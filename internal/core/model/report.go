package model

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidReport is wrapped by every dataset validation failure
	ErrInvalidReport = errors.New("invalid report data")

	// ErrNoProjects is returned when domain shares cannot be computed
	ErrNoProjects = errors.New("domain project total must be positive")
)

// Domain is one thematic bucket of projects.
type Domain struct {
	Name       string `json:"name" yaml:"name"`
	Projects   int    `json:"projects" yaml:"projects"`
	Color      string `json:"color" yaml:"color"`
	Icon       string `json:"icon" yaml:"icon"`
	KeyProject string `json:"keyProject" yaml:"key_project"`

	// Dashboard presentation
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	Legend string `json:"legend,omitempty" yaml:"legend,omitempty"`
	Bar    string `json:"bar,omitempty" yaml:"bar,omitempty"`
}

// DisplayLabel returns the short name used in the dashboard bar column.
func (d Domain) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// LegendLabel returns the name shown next to the domain icon.
func (d Domain) LegendLabel() string {
	if d.Legend != "" {
		return d.Legend
	}
	return d.DisplayLabel()
}

// AggregateMetrics holds whole-codebase counters.
type AggregateMetrics struct {
	PythonFiles    int `json:"pythonFiles" yaml:"python_files"`
	LinesOfCode    int `json:"linesOfCode" yaml:"lines_of_code"`
	Definitions    int `json:"definitions" yaml:"definitions"`
	Projects       int `json:"projects" yaml:"projects"`
	LangGraphFiles int `json:"langgraphFiles" yaml:"langgraph_files"`
	AsyncPatterns  int `json:"asyncPatterns" yaml:"async_patterns"`
}

// TimelinePhase is one chronological stage of the codebase history.
type TimelinePhase struct {
	Name     string   `json:"name" yaml:"name"`
	Years    string   `json:"years" yaml:"years"`
	Position int      `json:"position" yaml:"position"`
	Tech     []string `json:"tech" yaml:"tech"`
}

// TechGauge is a technology-stack row of the text dashboard. Gauge is kept
// verbatim, bar and count included.
type TechGauge struct {
	Name  string `json:"name" yaml:"name"`
	Gauge string `json:"gauge" yaml:"gauge"`
}

// PhaseVolume is a "LOC by phase" row of the text dashboard.
type PhaseVolume struct {
	Label  string `json:"label" yaml:"label"`
	Bar    string `json:"bar" yaml:"bar"`
	Approx string `json:"approx" yaml:"approx"`
}

// FileLines is an entry of the top files table.
type FileLines struct {
	Name  string `json:"name" yaml:"name"`
	Lines int    `json:"lines" yaml:"lines"`
}

// Dashboard holds the literal rows of the text dashboard.
type Dashboard struct {
	TechStack []TechGauge   `json:"techStack" yaml:"tech_stack"`
	Phases    []PhaseVolume `json:"phases" yaml:"phases"`
	TopFiles  []FileLines   `json:"topFiles" yaml:"top_files"`
	Quote     []string      `json:"quote" yaml:"quote"`
}

// Report is the complete dataset rendered by the generator.
type Report struct {
	Domains   []Domain         `json:"domains" yaml:"domains"`
	Metrics   AggregateMetrics `json:"metrics" yaml:"metrics"`
	Phases    []TimelinePhase  `json:"phases" yaml:"phases"`
	Dashboard Dashboard        `json:"dashboard" yaml:"dashboard"`
}

// Validate checks the dataset invariants and reports every violation found.
func (r Report) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidReport, fmt.Sprintf(format, args...)))
	}

	if len(r.Domains) == 0 {
		fail("no domains")
	}
	total := 0
	for i, d := range r.Domains {
		if d.Name == "" {
			fail("domain %d has no name", i)
		}
		if d.Projects < 0 {
			fail("domain %q has negative project count %d", d.Name, d.Projects)
		}
		if d.Color == "" {
			fail("domain %q has no color", d.Name)
		}
		if utf8.RuneCountInString(d.Icon) != 1 {
			fail("domain %q icon must be a single character, got %q", d.Name, d.Icon)
		}
		total += d.Projects
	}
	if len(r.Domains) > 0 && total == 0 {
		fail("domain project counts sum to zero")
	}

	for _, c := range []struct {
		name  string
		value int
	}{
		{"python_files", r.Metrics.PythonFiles},
		{"lines_of_code", r.Metrics.LinesOfCode},
		{"definitions", r.Metrics.Definitions},
		{"projects", r.Metrics.Projects},
		{"langgraph_files", r.Metrics.LangGraphFiles},
		{"async_patterns", r.Metrics.AsyncPatterns},
	} {
		if c.value < 0 {
			fail("metric %s is negative (%d)", c.name, c.value)
		}
	}

	if len(r.Phases) == 0 {
		fail("no timeline phases")
	}
	for i, p := range r.Phases {
		if p.Name == "" {
			fail("timeline phase %d has no name", i)
		}
	}

	for _, f := range r.Dashboard.TopFiles {
		if f.Lines < 0 {
			fail("top file %q has negative line count", f.Name)
		}
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy of the report.
func (r Report) Clone() Report {
	out := r
	out.Domains = append([]Domain(nil), r.Domains...)
	out.Phases = make([]TimelinePhase, len(r.Phases))
	for i, p := range r.Phases {
		p.Tech = append([]string(nil), p.Tech...)
		out.Phases[i] = p
	}
	out.Dashboard.TechStack = append([]TechGauge(nil), r.Dashboard.TechStack...)
	out.Dashboard.Phases = append([]PhaseVolume(nil), r.Dashboard.Phases...)
	out.Dashboard.TopFiles = append([]FileLines(nil), r.Dashboard.TopFiles...)
	out.Dashboard.Quote = append([]string(nil), r.Dashboard.Quote...)
	return out
}
