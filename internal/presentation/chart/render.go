package chart

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// savePNG rasterizes p onto a fresh canvas and writes it to path. The canvas
// lives only for the duration of the call.
func savePNG(p *plot.Plot, width, height vg.Length, path string) error {
	var c *vgimg.Canvas
	if err := guard(func() error {
		c = vgimg.NewWith(
			vgimg.UseWH(width, height),
			vgimg.UseDPI(DPI),
			vgimg.UseBackgroundColor(background),
		)
		p.Draw(draw.New(c))
		return nil
	}); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
