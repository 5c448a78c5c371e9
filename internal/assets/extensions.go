package assets

import (
	"fmt"
	"path"
	"strings"
)

// Extensions lists the file types treated as downloadable assets.
var Extensions = []string{
	// images
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif", ".svg", ".webp", ".heic", ".ico",
	// documents
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".odt", ".ods", ".odp", ".rtf", ".txt", ".md", ".csv", ".epub", ".pages",
	// archives
	".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".tgz", ".lz", ".iso",
	// video
	".mp4", ".mov", ".avi", ".wmv", ".flv", ".mkv", ".webm", ".mpeg", ".mpg", ".3gp", ".vob",
}

// IsDownloadable reports whether a field ends with a known asset extension,
// ignoring case.
func IsDownloadable(field string) bool {
	lower := strings.ToLower(field)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Find returns the downloadable fields in field order.
func Find(fields []string) []string {
	var urls []string
	for _, f := range fields {
		if IsDownloadable(f) {
			urls = append(urls, f)
		}
	}
	return urls
}

// FileName builds "<name> <index><ext>" for the index-th asset of a record,
// keeping the extension exactly as it appears in the URL.
func FileName(name string, index int, url string) string {
	return fmt.Sprintf("%s %d%s", name, index, path.Ext(url))
}
