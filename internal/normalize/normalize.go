// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize holds the text and state-name canonicalization shared by
// every stage. Counts from different sources only line up when they are keyed
// through the same functions, so no stage carries its own copy.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Whitespace includes Unicode separators such as U+00A0, which OCR output
// carries in place of plain spaces.
var (
	nonAlnum     = regexp.MustCompile(`[^a-z0-9]+`)
	whitespace   = regexp.MustCompile(`[\s\p{Z}]+`)
	hyphenRun    = regexp.MustCompile(`-+`)
	sentenceStop = regexp.MustCompile(`\.[\s\p{Z}]+[A-Z][a-z]`)
)

const emDash = "—"

// Text lower-cases value and replaces every run of characters outside
// [a-z0-9] with a single space. The result is used for search fields.
func Text(value string) string {
	value = strings.ToLower(value)
	value = nonAlnum.ReplaceAllString(value, " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(value, " "))
}

// Slugify returns a lowercase, hyphen-joined, ASCII-only identifier for value.
// Slugify(Slugify(x)) == Slugify(x).
func Slugify(value string) string {
	value = Text(value)
	value = whitespace.ReplaceAllString(value, "-")
	value = hyphenRun.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}

// SplitNameDesc splits a combined "name — description" field. It splits on the
// first em-dash, else at the first sentence boundary followed by a capitalized
// word, else returns the whole value as the name.
func SplitNameDesc(value string) (name, desc string) {
	value = strings.TrimSpace(value)

	if before, after, ok := strings.Cut(value, emDash); ok {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}

	if loc := sentenceStop.FindStringIndex(value); loc != nil {
		idx := loc[0]
		name = strings.TrimRight(strings.TrimSpace(value[:idx]), ".")
		desc = strings.TrimSpace(value[idx+1:])
		return name, desc
	}

	return value, ""
}

// StateAliases maps a canonical-form state string to the label it should be
// reported under.
type StateAliases map[string]string

// DefaultStateAliases returns the built-in alias table.
func DefaultStateAliases() StateAliases {
	return StateAliases{
		"NEW YORK STATE": "NEW YORK",
		"NEW YORK CITY":  "NEW YORK",
	}
}

// WithExtra returns a copy of a extended by extra. Keys and values of extra are
// canonicalized first, so "New York City." and "NEW YORK CITY" name the same
// alias.
func (a StateAliases) WithExtra(extra map[string]string) StateAliases {
	out := make(StateAliases, len(a)+len(extra))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range extra {
		key := canonicalForm(k)
		if key == "" {
			continue
		}
		out[key] = canonicalForm(v)
	}
	return out
}

// Canonical returns the canonical state label for name. A nil table uses the
// default aliases.
func (a StateAliases) Canonical(name string) string {
	if a == nil {
		a = defaultAliases
	}
	value := canonicalForm(name)
	if alias, ok := a[value]; ok {
		return alias
	}
	return value
}

var defaultAliases = DefaultStateAliases()

// State canonicalizes name with the default alias table.
func State(name string) string {
	return defaultAliases.Canonical(name)
}

func canonicalForm(name string) string {
	value := norm.NFC.String(strings.TrimSpace(name))
	value = strings.ToUpper(value)
	value = strings.ReplaceAll(value, ".", "")
	value = strings.ReplaceAll(value, "-", " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(value, " "))
}
