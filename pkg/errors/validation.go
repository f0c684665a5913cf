package errors

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// MaxTitleLength bounds page titles, in runes.
const MaxTitleLength = 120

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor checks that s is a CSS hex colour ("#rgb" or "#rrggbb").
// Named colours are rejected because the PDF sink needs explicit RGB values.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid color %q (want #rgb or #rrggbb)", s)
	}
	return nil
}

// ValidateTitle validates a page title typed by the user.
//
// The validation rules:
//   - Empty titles are allowed (an untitled page)
//   - Must be valid UTF-8
//   - No control characters (titles are a single line of text)
//   - Maximum length of MaxTitleLength runes
func ValidateTitle(title string) error {
	if title == "" {
		return nil
	}
	if !utf8.ValidString(title) {
		return New(ErrCodeInvalidTitle, "title is not valid UTF-8")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return New(ErrCodeInvalidTitle, "title too long (max %d characters)", MaxTitleLength)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTitle, "title contains control characters")
		}
	}
	return nil
}
