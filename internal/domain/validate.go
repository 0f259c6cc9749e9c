package domain

import (
	"regexp"
	"strings"
)

// slugRegex allows lowercase alphanumeric segments separated by single hyphens.
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// emailRegex matches local@domain with at least one dot in the domain and no whitespace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxSlugLength = 200

// ValidateSlug checks a slug candidate and returns the trimmed value.
// Failures carry the exact client-facing reason.
func ValidateSlug(candidate string) (string, error) {
	if candidate == "" {
		return "", &ValidationError{Reason: "Slug parameter is required"}
	}
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return "", &ValidationError{Reason: "Slug cannot be empty"}
	}
	if len(trimmed) > maxSlugLength {
		return "", &ValidationError{Reason: "Slug exceeds maximum length of 200 characters"}
	}
	if !slugRegex.MatchString(trimmed) {
		return "", &ValidationError{Reason: "Invalid slug format. Use only lowercase letters, numbers, and hyphens"}
	}
	return trimmed, nil
}

// ValidateEmail normalizes an email address to lowercase and trimmed form
// and checks it against the basic local@domain.tld shape.
func ValidateEmail(candidate string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(candidate))
	if normalized == "" {
		return "", &ValidationError{Reason: "Email is required"}
	}
	if !emailRegex.MatchString(normalized) {
		return "", &ValidationError{Reason: "Please provide a valid email address"}
	}
	return normalized, nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a slug from free text: lowercase, runs of non-alphanumeric
// characters collapsed to single hyphens, no leading or trailing hyphen.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
