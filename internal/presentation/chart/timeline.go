package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/penwyp/go-codebase-viz/internal/core/model"
)

const (
	timelineWidth  = 16 * vg.Inch
	timelineHeight = 6 * vg.Inch

	timelineMargin  = 0.7
	timelineRail    = 0.5
	timelineName    = 0.7
	timelineYears   = 0.62
	timelineTechTop = 0.35
	timelineTechGap = 0.08
)

// timelineRange returns the x extent covering every phase marker.
func timelineRange(phases []model.TimelinePhase) (float64, float64) {
	lo, hi := float64(phases[0].Position), float64(phases[0].Position)
	for _, ph := range phases[1:] {
		x := float64(ph.Position)
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo - timelineMargin, hi + timelineMargin
}

// Timeline renders the phases as markers on a horizontal rail, with names
// above and technologies listed below each marker.
func Timeline(phases []model.TimelinePhase, path string) error {
	if len(phases) == 0 {
		return errors.New("timeline needs at least one phase")
	}

	p := newDarkPlot("Technology Evolution: 5+ Years of Growth")
	p.HideAxes()
	xmin, xmax := timelineRange(phases)

	rail, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: timelineRail}, {X: xmax, Y: timelineRail}})
	if err != nil {
		return fmt.Errorf("timeline rail: %w", err)
	}
	rail.LineStyle.Color = railColor
	rail.LineStyle.Width = vg.Points(2)
	p.Add(rail)

	markers := make(plotter.XYs, len(phases))
	var names, years, techs plotter.XYLabels
	for i, ph := range phases {
		x := float64(ph.Position)
		markers[i] = plotter.XY{X: x, Y: timelineRail}

		names.XYs = append(names.XYs, plotter.XY{X: x, Y: timelineName})
		names.Labels = append(names.Labels, ph.Name)
		years.XYs = append(years.XYs, plotter.XY{X: x, Y: timelineYears})
		years.Labels = append(years.Labels, ph.Years)

		for j, tech := range ph.Tech {
			techs.XYs = append(techs.XYs, plotter.XY{X: x, Y: timelineTechTop - float64(j)*timelineTechGap})
			techs.Labels = append(techs.Labels, "* "+tech)
		}
	}

	// white ring under a blue dot
	for _, g := range []draw.GlyphStyle{
		{Color: white, Radius: vg.Points(10), Shape: draw.CircleGlyph{}},
		{Color: markerBlue, Radius: vg.Points(8), Shape: draw.CircleGlyph{}},
	} {
		sc, err := plotter.NewScatter(markers)
		if err != nil {
			return fmt.Errorf("timeline markers: %w", err)
		}
		sc.GlyphStyle = g
		p.Add(sc)
	}

	for _, set := range []struct {
		data   plotter.XYLabels
		color  color.Color
		size   float64
		bold   bool
		valign text.YAlignment
	}{
		{names, white, 14, true, text.YBottom},
		{years, dimGrey, 10, false, text.YBottom},
		{techs, lightGrey, 10, false, text.YTop},
	} {
		if len(set.data.Labels) == 0 {
			continue
		}
		labels, err := plotter.NewLabels(set.data)
		if err != nil {
			return fmt.Errorf("timeline labels: %w", err)
		}
		for i := range labels.TextStyle {
			st := textStyle(labels.TextStyle[i], set.color, set.size, set.bold)
			st.XAlign = text.XCenter
			st.YAlign = set.valign
			labels.TextStyle[i] = st
		}
		p.Add(labels)
	}

	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = 0, 1

	return savePNG(p, timelineWidth, timelineHeight, path)
}
