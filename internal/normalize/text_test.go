package normalize

import (
	"testing"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase prefix without dash", input: "cj7", expected: "CJ-7"},
		{name: "lowercase prefix with dash", input: "cj-7b", expected: "CJ-7B"},
		{name: "mixed case dj", input: "Dj-500x", expected: "DJ-500X"},
		{name: "fc inside sentence", input: "model fc-12a works", expected: "model FC-12A works"},
		{name: "prefix not at word boundary", input: "adj fcc", expected: "adj FC-C"},
		{name: "isolated quote between words", input: `5"10`, expected: "510"},
		{name: "leading quote kept", input: `"hello`, expected: `"hello`},
		{name: "double space between words", input: "a  b", expected: "a b"},
		{name: "triple space untouched", input: "a   b", expected: "a   b"},
		{name: "no match passes through", input: "Springfield, IL", expected: "Springfield, IL"},
		{name: "empty", input: "", expected: ""},
		{name: "chained prefixes", input: "cjfc", expected: "CJ-FC-"},
		{name: "repeated prefix", input: "cjcj", expected: "CJ-CJ-"},
		{name: "fc then cj", input: "fccj", expected: "FC-CJ-"},
		{name: "accented letter before prefix", input: "\u00e9cj", expected: "\u00e9cj"},
		{name: "prefix after accented word", input: "\u00e9t\u00e9 cj5", expected: "\u00e9t\u00e9 CJ-5"},
		{name: "quote between accented letters", input: "\u00e9\"\u00e9", expected: "\u00e9\u00e9"},
		{name: "double space between accented words", input: "\u00e9  \u00e9", expected: "\u00e9 \u00e9"},
		{name: "suffix stops at no-break space", input: "cj7x\u00a0y", expected: "CJ-7X\u00a0y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Code(tt.input)
			if result != tt.expected {
				t.Errorf("Code(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCodeIdempotent(t *testing.T) {
	inputs := []string{
		"cj-7",
		"cj--x",
		"fc-cj",
		"cj-ab-cj",
		"cjcj",
		"fccj",
		"djdj",
		"cjcjcj",
		"fc-dj-cjx",
		"\u00e9cj",
		`cj"cj`,
		`cj-"a"`,
		`x"y"z`,
		"a  b  c",
		"a    b",
		"DJ-500 and dj 600",
		"jane o'neil doe",
		"http://example.com/photo.JPG",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := Code(input)
			twice := Code(once)
			if once != twice {
				t.Errorf("Code not idempotent for %q: %q then %q", input, once, twice)
			}
		})
	}
}

func TestFieldIdempotent(t *testing.T) {
	for _, input := range []string{"cjcj", `"fccj"`, "djdj  x", "Jose\u0301 cj7"} {
		t.Run(input, func(t *testing.T) {
			once := Field(input)
			if twice := Field(once); once != twice {
				t.Errorf("Field not idempotent for %q: %q then %q", input, once, twice)
			}
		})
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "strips every quote", input: `"Jane"`, expected: "Jane"},
		{name: "collapses double spaces", input: "Main  St", expected: "Main St"},
		{name: "normalizes model code", input: `"cj 7"`, expected: "CJ- 7"},
		{name: "composes decomposed accents", input: "Jose\u0301", expected: "Jos\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Field(tt.input)
			if result != tt.expected {
				t.Errorf("Field(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
