package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-codebase-viz/internal/core/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAMLOverridesMetrics(t *testing.T) {
	path := writeFile(t, "data.yaml", `
metrics:
  lines_of_code: 200000
  projects: 600
`)

	report, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200000, report.Metrics.LinesOfCode)
	assert.Equal(t, 600, report.Metrics.Projects)
	// untouched counters keep their built-in values
	assert.Equal(t, 5471, report.Metrics.PythonFiles)
	assert.Equal(t, model.Default().Domains, report.Domains)
}

func TestLoadYAMLReplacesDomains(t *testing.T) {
	path := writeFile(t, "data.yml", `
domains:
  - name: Games
    projects: 3
    color: "#ff0000"
    icon: "@"
`)

	report, err := Load(path)
	require.NoError(t, err)
	require.Len(t, report.Domains, 1)
	assert.Equal(t, "Games", report.Domains[0].Name)
	assert.Empty(t, report.Domains[0].Label)
	assert.Len(t, report.Phases, 3)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "data.json", `{
  "phases": [{"name": "Only", "years": "2025", "position": 1, "tech": ["Go"]}],
  "dashboard": {"topFiles": [{"name": "main.go", "lines": 10}]}
}`)

	report, err := Load(path)
	require.NoError(t, err)
	require.Len(t, report.Phases, 1)
	assert.Equal(t, []string{"Go"}, report.Phases[0].Tech)
	require.Len(t, report.Dashboard.TopFiles, 1)
	assert.Len(t, report.Dashboard.TechStack, 4)
}

func TestDecodeEmpty(t *testing.T) {
	for _, ext := range []string{".yaml", ".json"} {
		report, err := Decode(nil, ext)
		require.NoError(t, err, ext)
		assert.Equal(t, model.Default(), report)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
		is   error
	}{
		{"unknown extension", "{}", ".toml", ErrUnsupportedFormat},
		{"negative count", "domains:\n  - {name: X, projects: -1, color: '#000000', icon: x}\n", ".yaml", model.ErrInvalidReport},
		{"no phases", `{"phases": []}`, ".json", model.ErrInvalidReport},
		{"unknown yaml field", "metrics:\n  lines: 3\n", ".yaml", nil},
		{"unknown json field", `{"colour": 1}`, ".json", nil},
		{"malformed json", `{"metrics":`, ".json", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.ext)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestFileWatcherReportsWrites(t *testing.T) {
	path := writeFile(t, "data.yaml", "metrics:\n  projects: 1\n")

	fw, err := NewFileWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  projects: 2\n"), 0644))

	select {
	case got := <-fw.Events():
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}
}

func TestFileWatcherClose(t *testing.T) {
	path := writeFile(t, "data.yaml", "")
	fw, err := NewFileWatcher(path, DefaultDebounce)
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	select {
	case _, ok := <-fw.Events():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events channel not closed")
	}
}
