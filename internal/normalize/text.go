package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Word boundaries are checked by wordRule rather than `\b`, which only knows
// ASCII word characters.
var (
	reQuote      = regexp.MustCompile(`"`)
	reDoubleSpc  = regexp.MustCompile(`  `)
	reCJ         = regexp.MustCompile(`[cC][jJ]-?`)
	reDJ         = regexp.MustCompile(`[dD][jJ]-?`)
	reFC         = regexp.MustCompile(`[fF][cC]-?`)
	reCodeSuffix = regexp.MustCompile(`(?:CJ-|DJ-|FC-)[^\s\v\p{Z}\x{85}\x1c-\x1f]*`)
)

// codePrefixLen is the length of every canonical prefix ("CJ-", "DJ-", "FC-").
const codePrefixLen = 3

type wordRule struct {
	re *regexp.Regexp
	// boundedEnd also requires a word boundary where the match ends.
	boundedEnd bool
	replace    func(string) string
}

func literal(s string) func(string) string {
	return func(string) string { return s }
}

var codeRules = []wordRule{
	{re: reQuote, boundedEnd: true, replace: literal("")},
	{re: reDoubleSpc, boundedEnd: true, replace: literal(" ")},
	{re: reCJ, replace: literal("CJ-")},
	{re: reDJ, replace: literal("DJ-")},
	{re: reFC, replace: literal("FC-")},
	{re: reCodeSuffix, replace: func(token string) string {
		return token[:codePrefixLen] + strings.ToUpper(token[codePrefixLen:])
	}},
}

// Code cleans a free-text field: isolated quotes go, word-bounded double
// spaces collapse, and the cj/dj/fc model prefixes are rewritten to their
// canonical uppercase-with-dash form with the rest of the token uppercased.
//
// A rewrite can expose a new prefix ("cjcj" -> "CJ-CJ"), so the rules are
// applied until the text stops changing. Code(Code(s)) == Code(s).
func Code(text string) string {
	for {
		next := text
		for _, rule := range codeRules {
			next = rule.apply(next)
		}
		if next == text {
			return next
		}
		text = next
	}
}

// apply replaces every non-overlapping match that starts on a word boundary,
// scanning left to right like a `\b`-anchored regexp would.
func (w wordRule) apply(s string) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(s) {
		loc := w.re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if isBoundary(s, start) && (!w.boundedEnd || isBoundary(s, end)) {
			b.WriteString(s[last:start])
			b.WriteString(w.replace(s[start:end]))
			last, pos = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + size
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

func isBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Field prepares a raw CSV value for the rest of the pipeline.
func Field(raw string) string {
	s := norm.NFC.String(raw)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "  ", " ")
	return Code(s)
}
