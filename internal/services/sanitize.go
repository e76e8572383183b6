package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const DefaultMaxTextLength = 50000

var (
	htmlTagPattern     = regexp.MustCompile(`<[^>]*>`)
	controlPattern     = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	jsSchemePattern    = regexp.MustCompile(`(?i)javascript:`)
	eventAttrPattern   = regexp.MustCompile(`(?i)on\w+\s*=`)
	dataHTMLURIPattern = regexp.MustCompile(`(?i)data:\s*text/html`)
)

// SanitizeText strips markup and control characters from text extracted
// from an uploaded profile and truncates it to maxLength runes.
func SanitizeText(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}

	text = htmlTagPattern.ReplaceAllString(text, "")
	text = controlPattern.ReplaceAllString(text, "")
	text = jsSchemePattern.ReplaceAllString(text, "")
	text = eventAttrPattern.ReplaceAllString(text, "")
	text = dataHTMLURIPattern.ReplaceAllString(text, "")

	if maxLength > 0 && utf8.RuneCountInString(text) > maxLength {
		runes := []rune(text)
		text = string(runes[:maxLength])
	}

	return strings.TrimSpace(text)
}
