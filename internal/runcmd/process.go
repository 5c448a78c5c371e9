package runcmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lehigh-university-libraries/dossier/internal/assets"
	"github.com/lehigh-university-libraries/dossier/internal/batch"
	"github.com/lehigh-university-libraries/dossier/internal/config"
	"github.com/lehigh-university-libraries/dossier/internal/results"
)

type processOptions struct {
	csvPath      string
	outputDir    string
	reportPath   string
	manifestPath string
	noDownload   bool
}

func executeProcess(ctx context.Context, w io.Writer, cfg config.Config, opts processOptions) error {
	var batchOpts []batch.Option
	if opts.outputDir != "" {
		batchOpts = append(batchOpts, batch.WithOutputDir(opts.outputDir))
	}

	var downloader batch.Downloader
	if opts.noDownload {
		batchOpts = append(batchOpts, batch.WithoutDownloads())
	} else {
		client := assets.NewHTTPClient(cfg, slog.Default())
		downloader = assets.NewDownloader(client, cfg.UserAgent, cfg.ReadTimeout)
	}

	report, err := batch.NewProcessor(downloader, batchOpts...).Process(ctx, opts.csvPath)
	if report == nil {
		return err
	}
	if err != nil {
		slog.Warn("Run interrupted, saving partial results", "rows_done", len(report.Rows), "error", err)
	}

	printSummary(w, report)

	if opts.reportPath != "" {
		path, saveErr := results.SaveToYAML(opts.reportPath, report, !opts.noDownload)
		if saveErr != nil {
			return saveErr
		}
		fmt.Fprintf(w, "\nRun report saved to: %s\n", path)
	}

	if opts.manifestPath != "" {
		path, saveErr := results.SaveManifest(opts.manifestPath, report)
		if saveErr != nil {
			return saveErr
		}
		fmt.Fprintf(w, "Manifest saved to: %s\n", path)
	}

	return err
}

func printSummary(w io.Writer, report *batch.Report) {
	s := report.Summary()

	fmt.Fprintf(w, "\nProcessing complete!\n")
	fmt.Fprintf(w, "  Rows read: %d\n", s.Rows)
	fmt.Fprintf(w, "  Dossiers written: %d\n", s.Written)
	fmt.Fprintf(w, "  Skipped (fewer than 11 columns): %d\n", s.Skipped)
	fmt.Fprintf(w, "  Failed: %d\n", s.Failed)
	if s.Collisions > 0 {
		fmt.Fprintf(w, "  Overwritten by a later row: %d\n", s.Collisions)
	}
	fmt.Fprintf(w, "  Assets downloaded: %d\n", s.AssetsDownloaded)
	fmt.Fprintf(w, "  Assets failed: %d\n", s.AssetsFailed)
	fmt.Fprintf(w, "  Output location: %s\n", report.OutputDir)
}
