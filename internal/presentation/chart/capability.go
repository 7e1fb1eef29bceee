package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrCapabilityUnavailable reports that charts cannot be rendered in this
// environment. Callers skip image artifacts when they see it.
var ErrCapabilityUnavailable = errors.New("charting capability unavailable")

// Probe draws a throwaway plot to check that fonts and the raster backend
// work. It is meant to run once at startup.
func Probe() error {
	return guard(func() error {
		p := newDarkPlot("probe")
		p.X.Label.Text = "x"
		c := vgimg.New(vg.Points(32), vg.Points(32))
		p.Draw(draw.New(c))
		return nil
	})
}

// guard converts a panic raised by the plotting backend into
// ErrCapabilityUnavailable.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCapabilityUnavailable, r)
		}
	}()
	return fn()
}
