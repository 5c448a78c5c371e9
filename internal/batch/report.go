package batch

import "time"

// Report is the outcome of one run over a CSV file.
type Report struct {
	Source     string
	OutputDir  string
	StartedAt  time.Time
	FinishedAt time.Time
	Rows       []RowResult
}

// RowResult records what happened to one data row.
type RowResult struct {
	Row       int
	Title     string
	Folder    string
	Dossier   string
	Skipped   bool // fewer than records.MinFields columns
	Collision bool // an earlier row in this run used the same folder
	Error     string
	Assets    []AssetResult
}

// AssetResult records one download attempt.
type AssetResult struct {
	Index int
	URL   string
	Path  string
	Bytes int64
	Error string
}

// OK reports whether the asset was saved.
func (a AssetResult) OK() bool {
	return a.Error == ""
}

// Summary counts row and asset outcomes.
type Summary struct {
	Rows             int
	Written          int
	Skipped          int
	Failed           int
	Collisions       int
	AssetsDownloaded int
	AssetsFailed     int
}

// Summary tallies the report.
func (r *Report) Summary() Summary {
	var s Summary
	for _, row := range r.Rows {
		s.Rows++
		switch {
		case row.Skipped:
			s.Skipped++
		case row.Error != "":
			s.Failed++
		default:
			s.Written++
		}
		if row.Collision {
			s.Collisions++
		}
		for _, a := range row.Assets {
			if a.OK() {
				s.AssetsDownloaded++
			} else {
				s.AssetsFailed++
			}
		}
	}
	return s
}
