package runcmd

import (
	"github.com/lehigh-university-libraries/dossier/internal/config"
	"github.com/spf13/cobra"
)

// NewProcessCmd creates the process command that builds record folders from a CSV export
func NewProcessCmd() *cobra.Command {
	var opts processOptions

	cmd := &cobra.Command{
		Use:   "process <csv>",
		Short: "Create a folder, dossier and downloaded assets for every contact in a CSV",
		Long: `Read a contact CSV export and create one folder per record.

Each folder is named "First Last Model" and holds a text dossier with the
address, email, telephone and story of the record. Every field that is a URL
ending in a known image, video, document or archive extension is
downloaded into the same folder as "<title> N.<ext>".

Folders are created next to the CSV unless --output is given. Rows with fewer
than 11 columns are skipped. Failed downloads are logged and do not stop the run.`,
		Example: `  # Process a CSV, writing folders next to it
  dossier process ./contacts.csv

  # Write folders elsewhere and keep a record of what happened
  dossier process ./contacts.csv --output ./dossiers --report ./runs/today.yaml

  # Dossiers only, plus a Parquet manifest of every file
  dossier process ./contacts.csv --no-download --manifest ./runs/today.parquet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.csvPath = args[0]
			return executeProcess(cmd.Context(), cmd.OutOrStdout(), config.Load(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.outputDir, "output", "", "Directory for record folders (defaults to the CSV's directory)")
	cmd.Flags().BoolVar(&opts.noDownload, "no-download", false, "Write dossiers without downloading assets")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Save the run report as YAML to this path")
	cmd.Flags().StringVar(&opts.manifestPath, "manifest", "", "Save a Parquet manifest of every file to this path")

	return cmd
}

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect <csv>",
		Short: "Preview how records would be written without touching the filesystem",
		Long: `Inspect records from a contact CSV export.

Each row is normalized and formatted exactly as process would do it, and the
folder name, address block, email, telephone and detected assets are printed.
Nothing is written and nothing is downloaded.`,
		Example: `  # Preview the first 5 records
  dossier inspect ./contacts.csv --limit 5

  # Preview every record
  dossier inspect ./contacts.csv --limit 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeInspect(cmd.Context(), cmd.OutOrStdout(), args[0], limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of records to inspect (0 for all)")

	return cmd
}

// NewReportCmd creates the report command
func NewReportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Print a saved run report or manifest",
		Long: `Print a run saved with process --report (.yaml) or --manifest (.parquet).

Every dossier and asset is listed with its status, path and error.`,
		Example: `  # Human readable summary
  dossier report ./runs/today.yaml

  # Failed downloads as CSV
  dossier report ./runs/today.parquet --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeReport(cmd.OutOrStdout(), args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, csv)")

	return cmd
}
