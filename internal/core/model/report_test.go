package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	r := Default()
	require.NoError(t, r.Validate())

	assert.Len(t, r.Domains, 6)
	assert.Len(t, r.Phases, 3)
	assert.Equal(t, 67, TotalProjects(r.Domains))
	assert.Equal(t, 172984, r.Metrics.LinesOfCode)
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a.Domains[0].Name = "changed"
	a.Phases[0].Tech[0] = "changed"
	a.Dashboard.Quote[0] = "changed"

	b := Default()
	assert.Equal(t, "Trading & Finance", b.Domains[0].Name)
	assert.Equal(t, "Python basics", b.Phases[0].Tech[0])
	assert.NotEqual(t, "changed", b.Dashboard.Quote[0])
}

func TestDomainLabels(t *testing.T) {
	d := Domain{Name: "AI Agents & Automation"}
	assert.Equal(t, "AI Agents & Automation", d.DisplayLabel())
	assert.Equal(t, "AI Agents & Automation", d.LegendLabel())

	d.Label = "AI Agents"
	assert.Equal(t, "AI Agents", d.DisplayLabel())
	assert.Equal(t, "AI Agents", d.LegendLabel())

	d.Legend = "Agents"
	assert.Equal(t, "Agents", d.LegendLabel())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Report)
		wantMsg []string
	}{
		{
			name:    "no domains",
			mutate:  func(r *Report) { r.Domains = nil },
			wantMsg: []string{"no domains"},
		},
		{
			name: "negative project count",
			mutate: func(r *Report) {
				r.Domains[1].Projects = -2
			},
			wantMsg: []string{`"Music & Creative" has negative project count -2`},
		},
		{
			name: "empty color and long icon",
			mutate: func(r *Report) {
				r.Domains[0].Color = ""
				r.Domains[0].Icon = "$$"
			},
			wantMsg: []string{"has no color", "single character"},
		},
		{
			name: "zero total",
			mutate: func(r *Report) {
				for i := range r.Domains {
					r.Domains[i].Projects = 0
				}
			},
			wantMsg: []string{"sum to zero"},
		},
		{
			name:    "negative metric",
			mutate:  func(r *Report) { r.Metrics.AsyncPatterns = -1 },
			wantMsg: []string{"async_patterns is negative"},
		},
		{
			name:    "no phases",
			mutate:  func(r *Report) { r.Phases = nil },
			wantMsg: []string{"no timeline phases"},
		},
		{
			name:    "unnamed phase",
			mutate:  func(r *Report) { r.Phases[2].Name = "" },
			wantMsg: []string{"timeline phase 2 has no name"},
		},
		{
			name:    "negative file lines",
			mutate:  func(r *Report) { r.Dashboard.TopFiles[0].Lines = -5 },
			wantMsg: []string{"negative line count"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Default()
			tt.mutate(&r)

			err := r.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidReport))
			for _, msg := range tt.wantMsg {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
