package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/penwyp/go-codebase-viz/internal/core/model"
	"github.com/penwyp/go-codebase-viz/internal/util"
)

const (
	pieWidth  = 12 * vg.Inch
	pieHeight = 8 * vg.Inch

	// sectors are pushed out from the centre by this fraction of the radius
	pieExplode = 0.02
	// radial positions of the outer name label and inner percentage label
	pieLabelRadius   = 1.1
	piePercentRadius = 0.6
	// arc resolution in radians
	pieArcStep = math.Pi / 90
)

// sector is one wedge of the pie, angles in radians counter-clockwise from
// the positive x axis.
type sector struct {
	Share model.Share
	Start float64
	End   float64
}

func (s sector) mid() float64 {
	return (s.Start + s.End) / 2
}

// pieSectors lays out the shares counter-clockwise starting at 12 o'clock.
func pieSectors(shares []model.Share) []sector {
	sectors := make([]sector, len(shares))
	angle := math.Pi / 2
	for i, sh := range shares {
		sweep := 2 * math.Pi * sh.Percent / 100
		sectors[i] = sector{Share: sh, Start: angle, End: angle + sweep}
		angle += sweep
	}
	return sectors
}

// outline returns the closed polygon of the wedge, shifted outwards.
func (s sector) outline() plotter.XYs {
	dx := pieExplode * math.Cos(s.mid())
	dy := pieExplode * math.Sin(s.mid())

	steps := int(math.Ceil((s.End-s.Start)/pieArcStep)) + 1
	pts := make(plotter.XYs, 0, steps+2)
	pts = append(pts, plotter.XY{X: dx, Y: dy})
	for i := 0; i <= steps; i++ {
		a := s.Start + (s.End-s.Start)*float64(i)/float64(steps)
		pts = append(pts, plotter.XY{X: dx + math.Cos(a), Y: dy + math.Sin(a)})
	}
	return pts
}

// DomainPie renders the share of projects per domain as a pie chart.
func DomainPie(domains []model.Domain, totalProjects int, path string) error {
	shares, err := model.DomainShares(domains)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Domain Distribution\n%d Projects Across %d Domains", totalProjects, len(domains))
	p := newDarkPlot(title)
	p.HideAxes()

	sectors := pieSectors(shares)
	var names, percents plotter.XYLabels
	for _, s := range sectors {
		if s.End == s.Start {
			continue
		}
		poly, err := plotter.NewPolygon(s.outline())
		if err != nil {
			return fmt.Errorf("sector %q: %w", s.Share.Name, err)
		}
		fill, err := ParseColor(s.Share.Color)
		if err != nil {
			return err
		}
		poly.Color = fill
		poly.LineStyle.Width = 0
		p.Add(poly)

		cos, sin := math.Cos(s.mid()), math.Sin(s.mid())
		names.XYs = append(names.XYs, plotter.XY{X: pieLabelRadius * cos, Y: pieLabelRadius * sin})
		names.Labels = append(names.Labels, s.Share.Name)
		percents.XYs = append(percents.XYs, plotter.XY{X: piePercentRadius * cos, Y: piePercentRadius * sin})
		percents.Labels = append(percents.Labels, util.FormatPercent(s.Share.Percent))
	}

	nameLabels, err := plotter.NewLabels(names)
	if err != nil {
		return fmt.Errorf("domain labels: %w", err)
	}
	for i := range nameLabels.TextStyle {
		st := textStyle(nameLabels.TextStyle[i], white, 11, false)
		st.YAlign = text.YCenter
		if names.XYs[i].X < 0 {
			st.XAlign = text.XRight
		} else {
			st.XAlign = text.XLeft
		}
		nameLabels.TextStyle[i] = st
	}

	percentLabels, err := plotter.NewLabels(percents)
	if err != nil {
		return fmt.Errorf("percent labels: %w", err)
	}
	for i := range percentLabels.TextStyle {
		st := textStyle(percentLabels.TextStyle[i], white, 11, true)
		st.XAlign = text.XCenter
		st.YAlign = text.YCenter
		percentLabels.TextStyle[i] = st
	}
	p.Add(nameLabels, percentLabels)

	// Equal data units per inch on both axes keeps the pie round.
	p.Y.Min, p.Y.Max = -1.3, 1.3
	half := 1.3 * float64(pieWidth/pieHeight)
	p.X.Min, p.X.Max = -half, half

	return savePNG(p, pieWidth, pieHeight, path)
}
