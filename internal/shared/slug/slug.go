// Package slug generates and validates URL-safe identifiers derived from
// user-supplied names and titles. Uniqueness within a scope is probed here,
// but the backing unique constraint remains the source of truth; callers
// must treat save-time duplicate errors as retryable.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// Fallback is substituted when cleaning leaves nothing usable.
	Fallback = "item"
	// MaxLength is the maximum slug length accepted by validation.
	MaxLength = 100
	// maxProbes bounds the uniqueness probe loop.
	maxProbes = 1000
)

var (
	validPattern  = regexp.MustCompile(`^[a-z0-9\-_]+$`)
	dropPattern   = regexp.MustCompile(`[^a-z0-9\s\-_]+`)
	spaceRuns     = regexp.MustCompile(`\s+`)
	hyphenRuns    = regexp.MustCompile(`-+`)
	diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Generate derives a slug from source text: accents folded, lowercased,
// characters outside [a-z0-9\s-_] stripped, whitespace runs collapsed to
// single hyphens, repeated hyphens collapsed, leading/trailing hyphens
// trimmed. An empty result yields Fallback. Output is capped at MaxLength.
func Generate(source string) string {
	s := source
	if folded, _, err := transform.String(diacriticFold, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = dropPattern.ReplaceAllString(s, "")
	s = spaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return Fallback
	}
	if len(s) > MaxLength {
		s = strings.Trim(s[:MaxLength], "-")
	}
	return s
}

// IsValid reports whether s is a well-formed slug.
func IsValid(s string) bool {
	return s != "" && len(s) <= MaxLength && validPattern.MatchString(s)
}

// WithSuffix appends the numbered collision suffix to base. A suffix of
// zero returns base unchanged.
func WithSuffix(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

// Unique probes base, base-1, base-2, ... against taken until a free slug
// is found. taken reports whether a candidate is already used by a
// different record within the scope.
func Unique(ctx context.Context, base string, taken func(ctx context.Context, candidate string) (bool, error)) (string, error) {
	return UniqueFrom(ctx, base, 0, taken)
}

// UniqueFrom is Unique starting at the given suffix. It is used when a
// save-time uniqueness violation forces regeneration with a higher suffix.
func UniqueFrom(ctx context.Context, base string, startSuffix int, taken func(ctx context.Context, candidate string) (bool, error)) (string, error) {
	for n := startSuffix; n < startSuffix+maxProbes; n++ {
		candidate := WithSuffix(base, n)
		inUse, err := taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to probe slug %q: %w", candidate, err)
		}
		if !inUse {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no unique slug found for %q after %d probes", base, maxProbes)
}

// ParseSuffix splits a slug into its base and numeric collision suffix.
// Slugs without a numeric suffix return (slug, 0).
func ParseSuffix(s string) (string, int) {
	idx := strings.LastIndex(s, "-")
	if idx <= 0 || idx == len(s)-1 {
		return s, 0
	}
	var n int
	if _, err := fmt.Sscanf(s[idx+1:], "%d", &n); err != nil || n < 0 {
		return s, 0
	}
	// Reject partial matches like "v2x".
	if fmt.Sprintf("%d", n) != s[idx+1:] {
		return s, 0
	}
	return s[:idx], n
}

// IsNumeric reports whether the request parameter is entirely digits,
// in which case resolution falls back to a primary-key lookup.
func IsNumeric(param string) bool {
	if param == "" {
		return false
	}
	for _, r := range param {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
