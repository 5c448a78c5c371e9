package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/dossier/internal/runcmd"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "dossier",
		Short: "Turn a contact CSV export into per-person folders with dossiers and assets",
		Long: `Dossier reads a contact CSV export and creates one folder per record.

Each folder holds a formatted text dossier (address, email, telephone, story)
and every image, video, document or archive linked from the record.

Download behaviour can be tuned with DOSSIER_* environment variables, which
are also read from a .env file in the working directory.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			logLevel := slog.LevelInfo
			if verbose {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	cmd.AddCommand(runcmd.NewProcessCmd())
	cmd.AddCommand(runcmd.NewInspectCmd())
	cmd.AddCommand(runcmd.NewReportCmd())

	return cmd
}
