package runcmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/dossier/internal/assets"
	"github.com/lehigh-university-libraries/dossier/internal/dossier"
	"github.com/lehigh-university-libraries/dossier/internal/normalize"
	"github.com/lehigh-university-libraries/dossier/internal/records"
)

func executeInspect(ctx context.Context, w io.Writer, csvPath string, limit int) error {
	recs, err := records.NewLoader(csvPath).LoadSample(limit)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	fmt.Fprintf(w, "Loaded %d records from %s\n", len(recs), csvPath)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w)

	for i, rec := range recs {
		if ctx.Err() != nil {
			fmt.Fprintln(w, "\nInspection interrupted.")
			return nil
		}

		fmt.Fprintf(w, "RECORD %d/%d (row %d)\n", i+1, len(recs), rec.Row)
		fmt.Fprintln(w, strings.Repeat("-", 80))

		if !rec.Valid() {
			fmt.Fprintf(w, "Skipped: %d of %d required columns\n\n", len(rec.Fields), records.MinFields)
			continue
		}

		clean := rec.Map(normalize.Field)
		title := dossier.Title(clean.FirstName(), clean.LastName(), clean.Model())
		name := dossier.FolderName(title, rec.Row)

		fmt.Fprintf(w, "Title:          %s\n", title)
		fmt.Fprintf(w, "Folder:         %s\n", name)
		fmt.Fprintf(w, "Email:          %s\n", clean.Email())
		fmt.Fprintf(w, "Telephone:      %s\n", clean.Phone())
		fmt.Fprintln(w, "Address:")
		address := dossier.FormatAddress(clean.Street1(), clean.Street2(), clean.City(), clean.State(), clean.Country())
		for _, line := range strings.Split(address, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}

		found := assets.Find(clean.Fields)
		fmt.Fprintf(w, "Assets:         %d\n", len(found))
		for j, url := range found {
			fmt.Fprintf(w, "  %s <- %s\n", assets.FileName(name, j+1, url), url)
		}
		fmt.Fprintln(w)
	}

	return nil
}
