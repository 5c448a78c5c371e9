package dossier

import (
	"strings"
)

// FormatAddress merges the address columns into a postal block, one line per
// element. City and state are dropped from the second line when street1
// already mentions them (e.g. "123 Main St, Springfield").
//
// street2 is accepted for column parity but is not part of the block.
func FormatAddress(street1, street2, city, state, country string) string {
	var parts []string
	for _, p := range strings.Split(street1, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	cityIncluded := anyContains(parts, city)
	stateIncluded := anyContains(parts, state)

	var lines []string

	if len(parts) > 0 {
		lines = append(lines, parts[0])
	} else if s := strings.TrimSpace(street1); s != "" {
		lines = append(lines, s)
	}

	var locality []string
	if !cityIncluded && city != "" {
		locality = append(locality, city)
	}
	if !stateIncluded && state != "" {
		locality = append(locality, state)
	}
	if len(locality) > 0 {
		lines = append(lines, strings.Join(locality, ", "))
	}

	if country != "" {
		lines = append(lines, country)
	}

	return strings.Join(lines, "\n")
}

// anyContains reports whether any part contains needle, ignoring case.
// An empty needle is contained by every part.
func anyContains(parts []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, p := range parts {
		if strings.Contains(strings.ToLower(p), needle) {
			return true
		}
	}
	return false
}
