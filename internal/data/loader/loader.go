// Package loader reads dataset overrides from YAML or JSON files.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/penwyp/go-codebase-viz/internal/core/model"
	"github.com/penwyp/go-codebase-viz/internal/util"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// overlay mirrors model.Report with optional sections. Sections absent from
// the file keep their built-in values; present lists replace them whole.
type overlay struct {
	Domains   *[]model.Domain         `json:"domains" yaml:"domains"`
	Metrics   *model.AggregateMetrics `json:"metrics" yaml:"metrics"`
	Phases    *[]model.TimelinePhase  `json:"phases" yaml:"phases"`
	Dashboard *dashboardOverlay       `json:"dashboard" yaml:"dashboard"`
}

type dashboardOverlay struct {
	TechStack *[]model.TechGauge   `json:"techStack" yaml:"tech_stack"`
	Phases    *[]model.PhaseVolume `json:"phases" yaml:"phases"`
	TopFiles  *[]model.FileLines   `json:"topFiles" yaml:"top_files"`
	Quote     *[]string            `json:"quote" yaml:"quote"`
}

// Load reads the dataset file at path, applies it over the built-in report
// and validates the result.
func Load(path string) (model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to read dataset: %w", err)
	}

	report, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return model.Report{}, fmt.Errorf("%s: %w", path, err)
	}

	util.LogDebugf("Loaded dataset %s: %d domains, %d phases", path, len(report.Domains), len(report.Phases))
	return report, nil
}

// Decode applies the encoded overrides to a copy of the built-in report.
// ext selects the format: ".yaml", ".yml" or ".json".
func Decode(data []byte, ext string) (model.Report, error) {
	report := model.Default()
	metrics := report.Metrics
	ov := overlay{Metrics: &metrics}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&ov); err != nil && !errors.Is(err, io.EOF) {
			return model.Report{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if len(bytes.TrimSpace(data)) > 0 {
			if err := strictJSON.Unmarshal(data, &ov); err != nil {
				return model.Report{}, fmt.Errorf("failed to parse JSON: %w", err)
			}
		}
	default:
		return model.Report{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	ov.apply(&report)
	if err := report.Validate(); err != nil {
		return model.Report{}, err
	}
	return report, nil
}

func (ov overlay) apply(r *model.Report) {
	if ov.Domains != nil {
		r.Domains = *ov.Domains
	}
	if ov.Metrics != nil {
		r.Metrics = *ov.Metrics
	}
	if ov.Phases != nil {
		r.Phases = *ov.Phases
	}
	if d := ov.Dashboard; d != nil {
		if d.TechStack != nil {
			r.Dashboard.TechStack = *d.TechStack
		}
		if d.Phases != nil {
			r.Dashboard.Phases = *d.Phases
		}
		if d.TopFiles != nil {
			r.Dashboard.TopFiles = *d.TopFiles
		}
		if d.Quote != nil {
			r.Dashboard.Quote = *d.Quote
		}
	}
}
