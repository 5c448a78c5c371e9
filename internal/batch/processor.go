package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lehigh-university-libraries/dossier/internal/assets"
	"github.com/lehigh-university-libraries/dossier/internal/dossier"
	"github.com/lehigh-university-libraries/dossier/internal/normalize"
	"github.com/lehigh-university-libraries/dossier/internal/records"
)

// ErrInputNotFound is returned when the CSV path is missing or not a file.
var ErrInputNotFound = errors.New("file not found")

// Downloader saves a single asset URL to destPath.
type Downloader interface {
	Download(ctx context.Context, url, destPath string) (int64, error)
}

// Processor turns a contact CSV into per-record folders.
type Processor struct {
	downloader    Downloader
	outputDir     string
	skipDownloads bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithOutputDir writes record folders under dir instead of next to the CSV.
func WithOutputDir(dir string) Option {
	return func(p *Processor) { p.outputDir = dir }
}

// WithoutDownloads writes dossiers only.
func WithoutDownloads() Option {
	return func(p *Processor) { p.skipDownloads = true }
}

// NewProcessor creates a processor. downloader may be nil when downloads are
// disabled.
func NewProcessor(downloader Downloader, opts ...Option) *Processor {
	p := &Processor{downloader: downloader}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs every data row of csvPath through normalize, format, write and
// download. Row and asset failures are recorded in the report and never stop
// the run; only a missing or unreadable input, or a canceled context, returns
// an error. On cancellation the partial report is returned with ctx.Err().
func (p *Processor) Process(ctx context.Context, csvPath string) (*Report, error) {
	info, err := os.Stat(csvPath)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, csvPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}

	source, err := filepath.Abs(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input path: %w", err)
	}

	outputDir := p.outputDir
	if outputDir == "" {
		outputDir = filepath.Dir(source)
	}

	recs, err := records.NewLoader(source).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	slog.Info("Processing contacts", "source", source, "rows", len(recs), "output", outputDir)

	report := &Report{
		Source:    source,
		OutputDir: outputDir,
		StartedAt: time.Now(),
		Rows:      make([]RowResult, 0, len(recs)),
	}

	writer := dossier.NewWriter(outputDir)
	folders := make(map[string]int)

	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = time.Now()
			return report, err
		}
		report.Rows = append(report.Rows, p.processRecord(ctx, writer, rec, folders))
	}

	report.FinishedAt = time.Now()
	return report, nil
}

func (p *Processor) processRecord(ctx context.Context, writer *dossier.Writer, rec records.Record, folders map[string]int) RowResult {
	result := RowResult{Row: rec.Row}

	if !rec.Valid() {
		slog.Debug("Skipping short row", "row", rec.Row, "fields", len(rec.Fields))
		result.Skipped = true
		return result
	}

	clean := rec.Map(normalize.Field)
	result.Title = dossier.Title(clean.FirstName(), clean.LastName(), clean.Model())
	name := dossier.FolderName(result.Title, rec.Row)

	if firstRow, ok := folders[name]; ok {
		result.Collision = true
		slog.Warn("Folder already written in this run, overwriting", "row", rec.Row, "first_row", firstRow, "folder", name)
	} else {
		folders[name] = rec.Row
	}

	folder, path, err := writer.Write(name, dossier.Dossier{
		Address: dossier.FormatAddress(clean.Street1(), clean.Street2(), clean.City(), clean.State(), clean.Country()),
		Email:   clean.Email(),
		Phone:   clean.Phone(),
		Story:   clean.Comments(),
	})
	result.Folder = folder
	if err != nil {
		slog.Error("Failed to write dossier", "row", rec.Row, "folder", name, "error", err)
		result.Error = err.Error()
		return result
	}
	result.Dossier = path
	slog.Info("Created file", "path", path)

	if p.skipDownloads || p.downloader == nil {
		return result
	}

	found := assets.Find(clean.Fields)
	for i, url := range found {
		if ctx.Err() != nil {
			slog.Warn("Run canceled, skipping remaining downloads", "row", rec.Row, "skipped", len(found)-i)
			break
		}
		asset := AssetResult{
			Index: i + 1,
			URL:   url,
			Path:  filepath.Join(folder, assets.FileName(name, i+1, url)),
		}

		written, err := p.downloader.Download(ctx, url, asset.Path)
		if err != nil {
			slog.Warn("Download failed", "url", url, "error", err)
			asset.Error = err.Error()
		} else {
			slog.Info("Downloaded", "url", url, "path", asset.Path, "bytes", written)
			asset.Bytes = written
		}
		result.Assets = append(result.Assets, asset)
	}

	return result
}
