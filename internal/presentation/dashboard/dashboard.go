// Package dashboard renders the fixed-width text summary of the codebase.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-codebase-viz/internal/core/model"
	"github.com/penwyp/go-codebase-viz/internal/util"
)

const (
	frameWidth = 76 // between the corner characters
	indent     = "  "

	bannerIndent = 20
	bannerText   = 57

	narrowColumn = 32
	wideColumn   = 45

	metricLabel = 16
	metricValue = 7
	domainLabel = 20
	domainBar   = 12
	techLabel   = 15
	phaseLabel  = 23
	phaseBar    = 9
	fileName    = 32
	fileLines   = 5
)

// Title is the banner heading of the dashboard.
const Title = "CODEBASE METRICS DASHBOARD"

type builder struct {
	lines []string
}

func (b *builder) line(s string) {
	b.lines = append(b.lines, s)
}

func (b *builder) blank() {
	b.line("")
}

func (b *builder) rule(fill string) {
	b.line("+" + strings.Repeat(fill, frameWidth) + "+")
}

func (b *builder) banner(text string) {
	b.line("|" + strings.Repeat(" ", bannerIndent) + util.PadRight(text, bannerText) + "|")
}

// columns writes a two-column row; trailing blanks are dropped.
func (b *builder) columns(width int, left, right string) {
	row := indent + util.PadRight(left, width) + right
	b.line(strings.TrimRight(row, " "))
}

func (b *builder) String() string {
	return "\n" + strings.Join(b.lines, "\n") + "\n"
}

type scaleRow struct {
	label string
	value int
}

func scaleRows(m model.AggregateMetrics) []scaleRow {
	return []scaleRow{
		{"Python Files:", m.PythonFiles},
		{"Lines of Code:", m.LinesOfCode},
		{"Definitions:", m.Definitions},
		{"Projects:", m.Projects},
		{"Async Patterns:", m.AsyncPatterns},
		{"LangGraph Files:", m.LangGraphFiles},
	}
}

func rows(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Render builds the dashboard text. Domain and technology bars are printed
// as given; they are not scaled from the counts beside them.
func Render(r model.Report) string {
	b := &builder{}

	b.rule("=")
	b.banner(Title)
	b.banner(fmt.Sprintf("%s Lines Across %s Projects",
		util.FormatThousands(r.Metrics.LinesOfCode), util.FormatThousands(r.Metrics.Projects)))
	b.rule("=")
	b.blank()

	writeScale(b, r)
	b.blank()
	b.rule("-")
	b.blank()

	writeStack(b, r.Dashboard)
	b.blank()
	b.rule("-")
	b.blank()

	writeFiles(b, r)
	b.blank()

	b.rule("=")
	for _, q := range r.Dashboard.Quote {
		b.line(q)
	}
	b.rule("=")

	return b.String()
}

func writeScale(b *builder, r model.Report) {
	b.columns(narrowColumn, "SCALE", "DOMAINS")
	b.columns(narrowColumn, "-----", "-------")
	b.blank()

	scale := scaleRows(r.Metrics)
	for i := 0; i < rows(len(scale), len(r.Domains)); i++ {
		var left, right string
		if i < len(scale) {
			left = util.PadRight(scale[i].label, metricLabel) +
				util.PadLeft(util.FormatThousands(scale[i].value), metricValue)
		}
		if i < len(r.Domains) {
			d := r.Domains[i]
			right = util.PadRight(d.DisplayLabel(), domainLabel) +
				util.PadRight(d.Bar, domainBar) + fmt.Sprint(d.Projects)
		}
		b.columns(narrowColumn, left, right)
	}
}

func writeStack(b *builder, d model.Dashboard) {
	b.columns(narrowColumn, "TECHNOLOGY STACK", "LOC BY PHASE")
	b.columns(narrowColumn, "----------------", "------------")
	b.blank()

	for i := 0; i < rows(len(d.TechStack), len(d.Phases)); i++ {
		var left, right string
		if i < len(d.TechStack) {
			left = util.PadRight(d.TechStack[i].Name, techLabel) + d.TechStack[i].Gauge
		}
		if i < len(d.Phases) {
			ph := d.Phases[i]
			right = util.PadRight(ph.Label, phaseLabel) + util.PadRight(ph.Bar, phaseBar) + " " + ph.Approx
		}
		b.columns(narrowColumn, left, right)
	}
}

func writeFiles(b *builder, r model.Report) {
	files := r.Dashboard.TopFiles
	b.columns(wideColumn, fmt.Sprintf("TOP %d FILES BY LOC", len(files)), "DOMAIN ICONS")
	b.columns(wideColumn, "-------------------", "------------")
	b.blank()

	for i := 0; i < rows(len(files), len(r.Domains)); i++ {
		var left, right string
		if i < len(files) {
			left = fmt.Sprintf("%d. ", i+1) + util.PadRight(files[i].Name, fileName) +
				util.PadLeft(util.FormatThousands(files[i].Lines), fileLines)
		}
		if i < len(r.Domains) {
			right = r.Domains[i].Icon + "  " + r.Domains[i].LegendLabel()
		}
		b.columns(wideColumn, left, right)
	}
}
