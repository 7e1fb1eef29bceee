package chart

import (
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-codebase-viz/internal/core/model"
)

// decodePNG checks that path holds a PNG of the expected pixel size.
func decodePNG(t *testing.T, path string, wantW, wantH int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, wantW, cfg.Width)
	assert.Equal(t, wantH, cfg.Height)
}

func TestProbe(t *testing.T) {
	assert.NoError(t, Probe())
}

func TestGuardRecoversPanic(t *testing.T) {
	err := guard(func() error { panic("no fonts") })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapabilityUnavailable))
	assert.Contains(t, err.Error(), "no fonts")

	sentinel := errors.New("plain")
	assert.Same(t, sentinel, guard(func() error { return sentinel }))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#2ecc71")
	require.NoError(t, err)
	r, g, b, _ := c.RGBA()
	assert.Equal(t, uint32(0x2e), r>>8)
	assert.Equal(t, uint32(0xcc), g>>8)
	assert.Equal(t, uint32(0x71), b>>8)

	_, err = ParseColor("green")
	assert.Error(t, err)
}

func TestPieSectors(t *testing.T) {
	shares, err := model.DomainShares(model.Default().Domains)
	require.NoError(t, err)

	sectors := pieSectors(shares)
	require.Len(t, sectors, 6)
	assert.InDelta(t, math.Pi/2, sectors[0].Start, 1e-9)
	assert.InDelta(t, math.Pi/2+2*math.Pi, sectors[5].End, 1e-9)
	for i := 1; i < len(sectors); i++ {
		assert.InDelta(t, sectors[i-1].End, sectors[i].Start, 1e-9)
	}

	// outline starts at the shifted centre and closes on the arc end
	pts := sectors[0].outline()
	mid := sectors[0].mid()
	assert.InDelta(t, pieExplode*math.Cos(mid), pts[0].X, 1e-9)
	assert.InDelta(t, pieExplode*math.Sin(mid), pts[0].Y, 1e-9)
	last := pts[len(pts)-1]
	assert.InDelta(t, pts[0].X+math.Cos(sectors[0].End), last.X, 1e-9)
}

func TestDomainPie(t *testing.T) {
	report := model.Default()
	path := filepath.Join(t.TempDir(), "domain_pie.png")

	require.NoError(t, DomainPie(report.Domains, report.Metrics.Projects, path))
	decodePNG(t, path, 12*DPI, 8*DPI)
}

func TestDomainPieNoProjects(t *testing.T) {
	domains := []model.Domain{{Name: "Empty", Color: "#000000", Icon: "x"}}
	err := DomainPie(domains, 0, filepath.Join(t.TempDir(), "pie.png"))
	assert.ErrorIs(t, err, model.ErrNoProjects)
}

func TestBarLabelsIdempotent(t *testing.T) {
	bars := model.MetricSeries(model.Default().Metrics)

	first := BarLabels(bars)
	second := BarLabels(model.MetricSeries(model.Default().Metrics))

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"5,471", "173", "106", "8", "555", "40"}, first)
}

func TestBarRowTopToBottom(t *testing.T) {
	assert.Equal(t, 5.0, barRow(0, 6))
	assert.Equal(t, 0.0, barRow(5, 6))
}

func TestMetricsBar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics_bar.png")
	require.NoError(t, MetricsBar(model.MetricSeries(model.Default().Metrics), path))
	decodePNG(t, path, 14*DPI, 8*DPI)

	assert.Error(t, MetricsBar(nil, path))
}

func TestTimeline(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "evolution_timeline.png")
	require.NoError(t, Timeline(model.Default().Phases, path))
	decodePNG(t, path, 16*DPI, 6*DPI)

	single := filepath.Join(dir, "single.png")
	require.NoError(t, Timeline([]model.TimelinePhase{{Name: "Only", Years: "2025", Position: 1}}, single))
	decodePNG(t, single, 16*DPI, 6*DPI)

	assert.Error(t, Timeline(nil, path))
}

func TestTimelineRange(t *testing.T) {
	lo, hi := timelineRange(model.Default().Phases)
	assert.InDelta(t, 0.3, lo, 1e-9)
	assert.InDelta(t, 3.7, hi, 1e-9)

	lo, hi = timelineRange([]model.TimelinePhase{{Name: "One", Position: 4}})
	assert.InDelta(t, 3.3, lo, 1e-9)
	assert.InDelta(t, 4.7, hi, 1e-9)
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chart.png")
	err := Timeline(model.Default().Phases, path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCapabilityUnavailable))
}
