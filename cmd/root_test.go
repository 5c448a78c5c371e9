package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"process", "inspect", "report"} {
		if _, _, err := root.Find([]string{name}); err != nil {
			t.Errorf("Expected subcommand %s: %v", name, err)
		}
	}

	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("Expected persistent --verbose flag")
	}
}

func TestRootCmdProcess(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "contacts.csv")
	content := "First,Last,Street1,Street2,City,State,CC,Country,Email,Phone,Model\n" +
		"bo,li,2 Oak Ave,,Austin,TX,,USA,bo@example.com,555-0101,fc-150\n"
	if err := os.WriteFile(csvPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"--verbose", "process", csvPath, "--no-download"})
	root.SetOut(&bytes.Buffer{})

	if err := root.Execute(); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "Bo Li FC-150", "Bo Li FC-150.txt")); err != nil {
		t.Errorf("Expected dossier file: %v", err)
	}
}
