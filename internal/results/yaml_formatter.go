package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lehigh-university-libraries/dossier/internal/batch"
	"gopkg.in/yaml.v3"
)

// RunConfig represents the configuration section of the run YAML
type RunConfig struct {
	Source     string `yaml:"source"`
	OutputDir  string `yaml:"outputdir"`
	Downloads  bool   `yaml:"downloads"`
	StartedAt  string `yaml:"startedat"`
	FinishedAt string `yaml:"finishedat"`
}

// AssetEntry represents one download attempt
type AssetEntry struct {
	Index int    `yaml:"index"`
	URL   string `yaml:"url"`
	Path  string `yaml:"path"`
	Bytes int64  `yaml:"bytes,omitempty"`
	Error string `yaml:"error,omitempty"`
}

// RowEntry represents a single processed CSV row
type RowEntry struct {
	Row       int          `yaml:"row"`
	Title     string       `yaml:"title,omitempty"`
	Folder    string       `yaml:"folder,omitempty"`
	Dossier   string       `yaml:"dossier,omitempty"`
	Skipped   bool         `yaml:"skipped,omitempty"`
	Collision bool         `yaml:"collision,omitempty"`
	Error     string       `yaml:"error,omitempty"`
	Assets    []AssetEntry `yaml:"assets,omitempty"`
}

// RunSpec represents a complete saved run
type RunSpec struct {
	Config  RunConfig     `yaml:"config"`
	Summary batch.Summary `yaml:"summary"`
	Results []RowEntry    `yaml:"results"`
}

// NewRunSpec converts a processor report into its YAML form.
func NewRunSpec(report *batch.Report, downloads bool) RunSpec {
	spec := RunSpec{
		Config: RunConfig{
			Source:     report.Source,
			OutputDir:  report.OutputDir,
			Downloads:  downloads,
			StartedAt:  report.StartedAt.Format(time.RFC3339),
			FinishedAt: report.FinishedAt.Format(time.RFC3339),
		},
		Summary: report.Summary(),
		Results: make([]RowEntry, 0, len(report.Rows)),
	}

	for _, r := range report.Rows {
		entry := RowEntry{
			Row:       r.Row,
			Title:     r.Title,
			Folder:    r.Folder,
			Dossier:   r.Dossier,
			Skipped:   r.Skipped,
			Collision: r.Collision,
			Error:     r.Error,
		}
		for _, a := range r.Assets {
			entry.Assets = append(entry.Assets, AssetEntry{
				Index: a.Index,
				URL:   a.URL,
				Path:  a.Path,
				Bytes: a.Bytes,
				Error: a.Error,
			})
		}
		spec.Results = append(spec.Results, entry)
	}

	return spec
}

// SaveToYAML writes the run report to path, creating parent directories.
// It returns the absolute path written.
func SaveToYAML(path string, report *batch.Report, downloads bool) (string, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	spec := NewRunSpec(report, downloads)
	data, err := yaml.Marshal(&spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, _ := filepath.Abs(path)
	return absPath, nil
}

// LoadYAML reads a run report saved by SaveToYAML.
func LoadYAML(path string) (*RunSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}

	var spec RunSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &spec, nil
}
