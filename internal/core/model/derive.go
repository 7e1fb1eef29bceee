package model

import (
	"math"

	"github.com/penwyp/go-codebase-viz/internal/util"
)

// Share is a domain's fraction of the total project count.
type Share struct {
	Name    string
	Color   string
	Percent float64
}

// Rounded returns the percentage rounded for display.
func (s Share) Rounded() int {
	return int(math.RoundToEven(s.Percent))
}

// DomainShares computes each domain's share of all projects, in input order.
func DomainShares(domains []Domain) ([]Share, error) {
	total := TotalProjects(domains)
	if total <= 0 {
		return nil, ErrNoProjects
	}

	shares := make([]Share, len(domains))
	for i, d := range domains {
		shares[i] = Share{
			Name:    d.Name,
			Color:   d.Color,
			Percent: float64(d.Projects) / float64(total) * 100,
		}
	}
	return shares, nil
}

// MetricBar is one bar of the metrics comparison chart.
type MetricBar struct {
	Label string
	Value float64
	Color string
}

// Display renders the value the way it is annotated on the chart.
func (b MetricBar) Display() string {
	return util.FormatFloatThousands(b.Value)
}

// MetricSeries lays out the aggregate counters for the comparison chart.
// Large counters are expressed in thousands so the bars stay comparable.
func MetricSeries(m AggregateMetrics) []MetricBar {
	return []MetricBar{
		{Label: "Python Files", Value: float64(m.PythonFiles), Color: "#3498db"},
		{Label: "Lines of Code (K)", Value: float64(m.LinesOfCode) / 1000, Color: "#e74c3c"},
		{Label: "Definitions (K)", Value: float64(m.Definitions) / 1000, Color: "#2ecc71"},
		{Label: "Async Patterns (K)", Value: float64(m.AsyncPatterns) / 1000, Color: "#9b59b6"},
		{Label: "Projects", Value: float64(m.Projects), Color: "#f39c12"},
		{Label: "LangGraph Files", Value: float64(m.LangGraphFiles), Color: "#1abc9c"},
	}
}

// TotalProjects sums the project counts of the given domains.
func TotalProjects(domains []Domain) int {
	total := 0
	for _, d := range domains {
		total += d.Projects
	}
	return total
}
