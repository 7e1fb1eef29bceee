package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/penwyp/go-codebase-viz/internal/core/model"
)

const (
	barsWidth     = 14 * vg.Inch
	barsHeight    = 8 * vg.Inch
	barsThickness = 0.6 * vg.Inch

	// room on the right for the value annotations
	barsHeadroom = 1.15
	// gap between a bar end and its value, as a fraction of the longest bar
	barsLabelGap = 0.01
)

// BarLabels returns the value annotations in the order the bars are drawn
// from top to bottom.
func BarLabels(bars []model.MetricBar) []string {
	labels := make([]string, len(bars))
	for i, b := range bars {
		labels[i] = b.Display()
	}
	return labels
}

// barRow maps the i-th bar to its y position so the first bar sits on top.
func barRow(i, n int) float64 {
	return float64(n - 1 - i)
}

// MetricsBar renders one horizontal bar per metric, first metric on top.
func MetricsBar(bars []model.MetricBar, path string) error {
	if len(bars) == 0 {
		return errors.New("metrics chart needs at least one bar")
	}

	p := newDarkPlot("Codebase Metrics at a Glance")
	p.X.Label.Text = "Count / Thousands"
	p.X.Label.TextStyle = textStyle(p.X.Label.TextStyle, white, 12, false)
	p.X.LineStyle.Color = white
	p.Y.LineStyle.Color = white
	p.X.Tick.LineStyle.Color = white
	p.Y.Tick.LineStyle.Color = white
	p.X.Tick.Label.Color = white
	p.Y.Tick.Label = textStyle(p.Y.Tick.Label, white, 12, false)

	n := len(bars)
	maxValue := 0.0
	names := make([]string, n)
	var annotations plotter.XYLabels
	for i, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
		names[n-1-i] = b.Label
	}

	for i, b := range bars {
		bar, err := plotter.NewBarChart(plotter.Values{b.Value}, barsThickness)
		if err != nil {
			return fmt.Errorf("bar %q: %w", b.Label, err)
		}
		fill, err := ParseColor(b.Color)
		if err != nil {
			return err
		}
		bar.Horizontal = true
		bar.XMin = barRow(i, n)
		bar.Color = fill
		bar.LineStyle.Width = 0
		p.Add(bar)

		annotations.XYs = append(annotations.XYs, plotter.XY{
			X: b.Value + maxValue*barsLabelGap,
			Y: barRow(i, n),
		})
		annotations.Labels = append(annotations.Labels, b.Display())
	}

	labels, err := plotter.NewLabels(annotations)
	if err != nil {
		return fmt.Errorf("value labels: %w", err)
	}
	for i := range labels.TextStyle {
		st := textStyle(labels.TextStyle[i], white, 11, true)
		st.XAlign = text.XLeft
		st.YAlign = text.YCenter
		labels.TextStyle[i] = st
	}
	p.Add(labels)

	p.NominalY(names...)
	p.X.Min = 0
	if maxValue > 0 {
		p.X.Max = maxValue * barsHeadroom
	} else {
		p.X.Max = 1
	}
	p.Y.Min, p.Y.Max = -0.5, float64(n)-0.5

	return savePNG(p, barsWidth, barsHeight, path)
}
