package runcmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/dossier/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactsCSV = "First,Last,Street1,Street2,City,State,CC,Country,Email,Phone,Model,Comments,Photo\n" +
	"jane,doe,1 Elm Rd,,Metropolis,NY,US,USA,jane@example.com,555-0100,cj-7,Loves jeeps,http://example.com/photo.jpg\n" +
	"short,row\n"

func writeContacts(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.csv")
	require.NoError(t, os.WriteFile(path, []byte(contactsCSV), 0644))
	return dir, path
}

func TestProcessCmdRequiresOneArg(t *testing.T) {
	cmd := NewProcessCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestProcessCmdMissingFile(t *testing.T) {
	cmd := NewProcessCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.csv")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestProcessCmdWritesDossiersAndReports(t *testing.T) {
	dir, csvPath := writeContacts(t)
	out := filepath.Join(dir, "out")
	reportPath := filepath.Join(dir, "runs", "run.yaml")
	manifestPath := filepath.Join(dir, "runs", "run.parquet")

	var stdout bytes.Buffer
	cmd := NewProcessCmd()
	cmd.SetArgs([]string{csvPath, "--no-download", "--output", out, "--report", reportPath, "--manifest", manifestPath})
	cmd.SetOut(&stdout)

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(out, "Jane Doe CJ-7", "Jane Doe CJ-7.txt"))
	assert.NoFileExists(t, filepath.Join(out, "Jane Doe CJ-7", "Jane Doe CJ-7 1.jpg"))

	assert.Contains(t, stdout.String(), "Dossiers written: 1")
	assert.Contains(t, stdout.String(), "Skipped (fewer than 11 columns): 1")
	assert.FileExists(t, reportPath)
	assert.FileExists(t, manifestPath)

	rows, err := results.Load(manifestPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, results.StatusOK, rows[0].Status)
	assert.Equal(t, results.StatusSkipped, rows[1].Status)
}

func TestInspectCmdDoesNotWrite(t *testing.T) {
	dir, csvPath := writeContacts(t)

	var stdout bytes.Buffer
	cmd := NewInspectCmd()
	cmd.SetArgs([]string{csvPath, "--limit", "0"})
	cmd.SetOut(&stdout)

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "Loaded 2 records")
	assert.Contains(t, output, "Folder:         Jane Doe CJ-7")
	assert.Contains(t, output, "  Metropolis, NY")
	assert.Contains(t, output, "Jane Doe CJ-7 1.jpg <- http://example.com/photo.jpg")
	assert.Contains(t, output, "Skipped: 2 of 11 required columns")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "inspect must only read the CSV")
}

func TestReportCmdFormats(t *testing.T) {
	dir, csvPath := writeContacts(t)
	reportPath := filepath.Join(dir, "run.yaml")

	process := NewProcessCmd()
	process.SetArgs([]string{csvPath, "--no-download", "--report", reportPath})
	process.SetOut(&bytes.Buffer{})
	require.NoError(t, process.Execute())

	tests := []struct {
		format string
		check  func(t *testing.T, output string)
	}{
		{
			format: "text",
			check: func(t *testing.T, output string) {
				assert.Contains(t, output, "Dossiers: 1 written, 0 failed, 1 skipped")
				assert.Contains(t, output, "[row 1] Jane Doe CJ-7")
				assert.Contains(t, output, "[row 2] skipped")
			},
		},
		{
			format: "json",
			check: func(t *testing.T, output string) {
				var rows []results.ManifestRow
				require.NoError(t, json.Unmarshal([]byte(output), &rows))
				assert.Len(t, rows, 2)
			},
		},
		{
			format: "csv",
			check: func(t *testing.T, output string) {
				lines := strings.Split(strings.TrimSpace(output), "\n")
				assert.Len(t, lines, 3)
				assert.True(t, strings.HasPrefix(lines[0], "Row,Kind,Title"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var stdout bytes.Buffer
			cmd := NewReportCmd()
			cmd.SetArgs([]string{reportPath, "--format", tt.format})
			cmd.SetOut(&stdout)

			require.NoError(t, cmd.Execute())
			tt.check(t, stdout.String())
		})
	}
}

func TestReportCmdUnsupportedFormat(t *testing.T) {
	dir, csvPath := writeContacts(t)
	reportPath := filepath.Join(dir, "run.yaml")

	process := NewProcessCmd()
	process.SetArgs([]string{csvPath, "--no-download", "--report", reportPath})
	process.SetOut(&bytes.Buffer{})
	require.NoError(t, process.Execute())

	cmd := NewReportCmd()
	cmd.SetArgs([]string{reportPath, "--format", "xml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.ErrorContains(t, cmd.Execute(), "unsupported format")
}
