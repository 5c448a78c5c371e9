package records

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Loader reads contact records from a CSV export
type Loader struct {
	path string
}

// NewLoader creates a new CSV loader
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// Load reads every data row. The header row is discarded; rows of any width
// are returned, callers check Valid.
func (l *Loader) Load() ([]Record, error) {
	return l.load(-1)
}

// LoadSample reads at most limit data rows (useful for previews)
func (l *Loader) LoadSample(limit int) ([]Record, error) {
	if limit <= 0 {
		return l.load(-1)
	}
	return l.load(limit)
}

func (l *Loader) load(limit int) ([]Record, error) {
	slog.Debug("Opening CSV file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	if head, err := reader.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = reader.Discard(len(utf8BOM))
	}

	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	slog.Debug("CSV header", "columns", len(header))

	var records []Record
	for limit < 0 || len(records) < limit {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+1, err)
		}
		records = append(records, Record{Row: len(records) + 1, Fields: fields})
	}

	slog.Debug("Finished reading CSV file", "rows", len(records))

	return records, nil
}
