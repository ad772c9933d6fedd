package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Multiple spaces cleanup
var multiSpacePattern = regexp.MustCompile(`\s+`)

var titleCaser = cases.Title(language.AmericanEnglish)

// NormalizeItemQuery canonicalizes an item query for price lookup and
// simulation seeding: queries that differ only in case or whitespace refer
// to the same item.
func NormalizeItemQuery(item string) string {
	cleaned := multiSpacePattern.ReplaceAllString(item, " ")
	return strings.ToLower(strings.TrimSpace(cleaned))
}

// DisplayItemName formats a raw item query for presentation ("whole  milk"
// becomes "Whole Milk").
func DisplayItemName(item string) string {
	return titleCaser.String(NormalizeItemQuery(item))
}
