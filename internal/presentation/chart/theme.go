package chart

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Output resolution of every chart
const DPI = 150

var (
	background = mustHex("#1a1a2e")
	white      = color.White
	dimGrey    = mustHex("#888888")
	lightGrey  = mustHex("#cccccc")
	markerBlue = mustHex("#3498db")
	railColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
)

// ParseColor converts a "#rrggbb" string into a color.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

func mustHex(hex string) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// newDarkPlot creates a plot with the shared dark theme and a bold title.
func newDarkPlot(title string) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = background

	p.Title.Text = title
	p.Title.Padding = vg.Points(20)
	p.Title.TextStyle.Color = white
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold

	return p
}

// textStyle returns a label style based on the plot defaults.
func textStyle(base text.Style, c color.Color, size float64, bold bool) text.Style {
	s := base
	s.Color = c
	s.Font.Size = vg.Points(size)
	if bold {
		s.Font.Weight = xfont.WeightBold
	}
	return s
}
