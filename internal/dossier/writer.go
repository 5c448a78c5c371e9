package dossier

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var rule = strings.Repeat("-", 87)

// Dossier is the content written for one contact record.
type Dossier struct {
	Address string
	Email   string
	Phone   string
	Story   string
}

// Render returns the dossier text.
func (d Dossier) Render() string {
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString("Address: \n" + d.Address + "\n\n")
	b.WriteString("Email: " + d.Email + "\n\n")
	b.WriteString("Telephone: " + d.Phone + "\n\n")
	b.WriteString("Story:\n" + d.Story + "\n\n")
	b.WriteString(rule + "\n")
	return b.String()
}

// Writer creates record folders and dossier files under BaseDir.
type Writer struct {
	BaseDir string
}

// NewWriter creates a new dossier writer rooted at baseDir
func NewWriter(baseDir string) *Writer {
	return &Writer{BaseDir: baseDir}
}

// Write ensures BaseDir/name exists and writes name.txt inside it, replacing
// any previous file of the same name. It returns the folder and file paths.
func (w *Writer) Write(name string, d Dossier) (string, string, error) {
	folder := filepath.Join(w.BaseDir, name)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create record folder: %w", err)
	}

	path := filepath.Join(folder, name+".txt")
	if err := os.WriteFile(path, []byte(d.Render()), 0644); err != nil {
		return folder, "", fmt.Errorf("failed to write dossier file: %w", err)
	}

	return folder, path, nil
}
