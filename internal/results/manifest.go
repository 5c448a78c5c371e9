package results

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/dossier/internal/batch"
	"github.com/parquet-go/parquet-go"
)

// Manifest row kinds and statuses.
const (
	KindDossier = "dossier"
	KindAsset   = "asset"

	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// ManifestRow is one file the run produced (or tried to produce).
type ManifestRow struct {
	Row       int64  `json:"row" parquet:"row"`
	Kind      string `json:"kind" parquet:"kind"`
	Title     string `json:"title" parquet:"title"`
	Index     int32  `json:"index" parquet:"index"` // asset position, 0 for the dossier
	URL       string `json:"url" parquet:"url"`
	Path      string `json:"path" parquet:"path"`
	Bytes     int64  `json:"bytes" parquet:"bytes"`
	Status    string `json:"status" parquet:"status"`
	Collision bool   `json:"collision" parquet:"collision"`
	Error     string `json:"error" parquet:"error"`
}

// Flatten lists the dossier and every asset of each row.
func (s *RunSpec) Flatten() []ManifestRow {
	var rows []ManifestRow
	for _, r := range s.Results {
		dossier := ManifestRow{
			Row:       int64(r.Row),
			Kind:      KindDossier,
			Title:     r.Title,
			Path:      r.Dossier,
			Status:    StatusOK,
			Collision: r.Collision,
			Error:     r.Error,
		}
		switch {
		case r.Skipped:
			dossier.Status = StatusSkipped
		case r.Error != "":
			dossier.Status = StatusFailed
		}
		rows = append(rows, dossier)

		for _, a := range r.Assets {
			asset := ManifestRow{
				Row:    int64(r.Row),
				Kind:   KindAsset,
				Title:  r.Title,
				Index:  int32(a.Index),
				URL:    a.URL,
				Path:   a.Path,
				Bytes:  a.Bytes,
				Status: StatusOK,
				Error:  a.Error,
			}
			if a.Error != "" {
				asset.Status = StatusFailed
			}
			rows = append(rows, asset)
		}
	}
	return rows
}

// SaveManifest writes the flattened report to a Parquet file.
func SaveManifest(path string, report *batch.Report) (string, error) {
	spec := NewRunSpec(report, true)
	rows := spec.Flatten()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create manifest directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[ManifestRow](file)
	if _, err := writer.Write(rows); err != nil {
		return "", fmt.Errorf("failed to write manifest rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish manifest: %w", err)
	}

	slog.Debug("Manifest written", "path", path, "rows", len(rows))

	absPath, _ := filepath.Abs(path)
	return absPath, nil
}

// LoadManifest reads a Parquet manifest written by SaveManifest.
func LoadManifest(path string) ([]ManifestRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[ManifestRow](pf)
	defer reader.Close()

	var rows []ManifestRow
	batchRows := make([]ManifestRow, 128)
	for {
		n, err := reader.Read(batchRows)
		rows = append(rows, batchRows[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest: %w", err)
		}
	}

	return rows, nil
}

// Load reads either a YAML report or a Parquet manifest, chosen by extension.
func Load(path string) ([]ManifestRow, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".parquet":
		return LoadManifest(path)
	case ".yaml", ".yml":
		spec, err := LoadYAML(path)
		if err != nil {
			return nil, err
		}
		return spec.Flatten(), nil
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .parquet, .yaml)", ext)
	}
}
