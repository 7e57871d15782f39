package common

import "strings"

// NormalizeName canonicalizes a character or forum username for matching.
// Forum software stores spaces as underscores, so "First_Last" and
// "First Last" refer to the same person. Matching is case-insensitive.
func NormalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
}

// NameSlug is the underscore form of a character name ("First Last" ->
// "First_Last"), the spelling the forum keys usernames by.
func NameSlug(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// NamesMatch reports whether two names refer to the same person regardless
// of which side holds underscores.
func NamesMatch(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
