package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PredefinedTags are the tag suggestions offered when adding a place.
var PredefinedTags = []string{"Casual", "Romantic", "Pizza", "Seafood", "Cocktails", "Brunch"}

// NormalizeTag trims the tag and rewrites it as first letter upper case, remainder lower case.
func NormalizeTag(raw string) string {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(tag)

	return string(unicode.ToUpper(first)) + strings.ToLower(tag[size:])
}

// NormalizeTags normalizes every tag, dropping empty ones and repeated normalized forms.
// The order of first occurrence is kept.
func NormalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, r := range raw {
		tag := NormalizeTag(r)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

// SplitTags splits a comma separated list such as "Casual, pizza".
func SplitTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}

	return strings.Split(csv, ",")
}
