package blog

import (
	"strconv"
	"strings"
	"unicode"
)

const maxSlugLen = 100

// Slugify derives a URL slug from a title: lowercased, letters and digits
// of any script kept, whitespace runs turned into a single hyphen,
// punctuation dropped, truncated to 100 runes. Deterministic and
// idempotent: slugifying a slug returns it unchanged.
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	out := make([]rune, 0, len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			out = append(out, r)
		case unicode.IsSpace(r) || r == '-':
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}

	if len(out) > maxSlugLen {
		out = out[:maxSlugLen]
	}

	return strings.Trim(string(out), "-")
}

// IsValidSlug reports whether s is usable as a slug: non-empty, at most
// 100 runes, lowercase letters, digits and hyphens only.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	n := 0
	for _, r := range s {
		n++
		if r == '-' || unicode.IsDigit(r) {
			continue
		}
		if !unicode.IsLetter(r) || unicode.IsUpper(r) {
			return false
		}
	}

	return n <= maxSlugLen
}

// UniqueSlug resolves base against the set of already used slugs by
// appending -1, -2, ... until the result is unused. Returns base itself
// when it is not taken.
func UniqueSlug(base string, used []string) string {
	taken := make(map[string]struct{}, len(used))
	for _, s := range used {
		taken[s] = struct{}{}
	}

	slug := base
	for counter := 1; ; counter++ {
		if _, ok := taken[slug]; !ok {
			return slug
		}
		slug = base + "-" + strconv.Itoa(counter)
	}
}
