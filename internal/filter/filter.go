// Package filter implements the history-visibility predicate (spec.md
// §4.5): a literal substring or compiled regexp matched against a
// result's active-stream body. It gates which history indices are shown;
// the underlying store is never modified.
package filter

import (
	"regexp"
	"strings"
)

// Predicate is an immutable compiled filter. The zero value is the
// always-match "filter off" state.
type Predicate struct {
	text    string
	isRegex bool
	re      *regexp.Regexp
}

// None is the inactive filter: every body matches.
func None() Predicate {
	return Predicate{}
}

// Active reports whether a non-empty filter is in effect.
func (p Predicate) Active() bool {
	return p.text != ""
}

// Text returns the filter's literal source text.
func (p Predicate) Text() string {
	return p.text
}

// IsRegex reports whether Text is interpreted as a regular expression.
func (p Predicate) IsRegex() bool {
	return p.isRegex
}

// Match reports whether body satisfies the predicate. An inactive
// predicate matches everything.
func (p Predicate) Match(body string) bool {
	if !p.Active() {
		return true
	}
	if p.isRegex {
		return p.re != nil && p.re.MatchString(body)
	}
	return strings.Contains(body, p.text)
}

// Compile builds a Predicate for (text, isRegex). An empty text always
// succeeds with the inactive filter. A regex that fails to compile
// returns ok=false; the caller must leave any previously active filter
// untouched (spec.md §4.5, §7).
func Compile(text string, isRegex bool) (p Predicate, ok bool) {
	if text == "" {
		return None(), true
	}
	if !isRegex {
		return Predicate{text: text}, true
	}
	re, err := regexp.Compile(text)
	if err != nil {
		return Predicate{}, false
	}
	return Predicate{text: text, isRegex: true, re: re}, true
}

// Visible filters indices down to those whose body matches p. Index 0 —
// the "latest of the current view" sentinel row — is always kept
// regardless of the filter (spec.md §3, §8 scenario 5).
func Visible(indices []int, bodyOf func(index int) string, p Predicate) []int {
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx == 0 || p.Match(bodyOf(idx)) {
			out = append(out, idx)
		}
	}
	return out
}
