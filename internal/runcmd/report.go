package runcmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/lehigh-university-libraries/dossier/internal/results"
)

func executeReport(w io.Writer, path, format string) error {
	rows, err := results.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	switch format {
	case "text":
		return printTextReport(w, path, rows)
	case "json":
		return printJSONReport(w, rows)
	case "csv":
		return printCSVReport(w, rows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printTextReport(w io.Writer, path string, rows []results.ManifestRow) error {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Kind+"/"+r.Status]++
	}

	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Dossier Run Report\n")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Source: %s\n\n", path)
	fmt.Fprintf(w, "Dossiers: %d written, %d failed, %d skipped\n",
		counts[results.KindDossier+"/"+results.StatusOK],
		counts[results.KindDossier+"/"+results.StatusFailed],
		counts[results.KindDossier+"/"+results.StatusSkipped])
	fmt.Fprintf(w, "Assets:   %d downloaded, %d failed\n",
		counts[results.KindAsset+"/"+results.StatusOK],
		counts[results.KindAsset+"/"+results.StatusFailed])

	fmt.Fprintln(w, "\nDetailed Results:")
	fmt.Fprintln(w, "========================================")

	for _, r := range rows {
		switch {
		case r.Kind == results.KindDossier && r.Status == results.StatusSkipped:
			fmt.Fprintf(w, "\n[row %d] skipped\n", r.Row)
		case r.Kind == results.KindDossier:
			fmt.Fprintf(w, "\n[row %d] %s\n", r.Row, r.Title)
			if r.Status == results.StatusFailed {
				fmt.Fprintf(w, "  ❌ Error: %s\n", r.Error)
				continue
			}
			fmt.Fprintf(w, "  Dossier: %s\n", r.Path)
			if r.Collision {
				fmt.Fprintln(w, "  ⚠️  Overwrote an earlier row with the same folder")
			}
		case r.Status == results.StatusFailed:
			fmt.Fprintf(w, "  ❌ Asset %d %s: %s\n", r.Index, r.URL, r.Error)
		default:
			fmt.Fprintf(w, "  ✅ Asset %d %s (%d bytes)\n", r.Index, r.Path, r.Bytes)
		}
	}

	return nil
}

func printJSONReport(w io.Writer, rows []results.ManifestRow) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func printCSVReport(w io.Writer, rows []results.ManifestRow) error {
	writer := csv.NewWriter(w)

	header := []string{"Row", "Kind", "Title", "Index", "URL", "Path", "Bytes", "Status", "Collision", "Error"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.Row, 10),
			r.Kind,
			r.Title,
			strconv.Itoa(int(r.Index)),
			r.URL,
			r.Path,
			strconv.FormatInt(r.Bytes, 10),
			r.Status,
			strconv.FormatBool(r.Collision),
			r.Error,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
