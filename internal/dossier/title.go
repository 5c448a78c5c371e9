package dossier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9 _\-]`)

// Title builds the "First Last Model" display string for a record.
// Surnames may span several words; model tokens that already start with an
// uppercase letter (codes such as "CJ-7") are left as they are.
func Title(first, last, model string) string {
	firstClean := capitalize(strings.TrimSpace(first))

	lastParts := strings.Fields(last)
	for i, part := range lastParts {
		lastParts[i] = capitalize(part)
	}

	modelParts := strings.Fields(model)
	for i, part := range modelParts {
		modelParts[i] = smartCapitalize(part)
	}

	return fmt.Sprintf("%s %s %s", firstClean, strings.Join(lastParts, " "), strings.Join(modelParts, " "))
}

// SafeFilename keeps letters, digits, spaces, underscores and hyphens.
func SafeFilename(name string) string {
	return strings.TrimSpace(reUnsafeFilename.ReplaceAllString(name, ""))
}

// FolderName returns the folder (and dossier file) name for a record.
// A title with nothing left after sanitizing falls back to "Record <row>".
func FolderName(title string, row int) string {
	if name := SafeFilename(title); name != "" {
		return name
	}
	return fmt.Sprintf("Record %d", row)
}

// capitalize uppercases the first letter and lowercases the rest.
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToTitle(r)) + strings.ToLower(word[size:])
}

func smartCapitalize(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(r) {
		return word
	}
	return capitalize(word)
}
