package codetag

import (
	"strings"
	"unicode"
)

// Block markers recognized by the executor.
const (
	OpenTag  = "<execute_python>"
	CloseTag = "</execute_python>"
)

const (
	fence     = "```"
	fenceLang = "python"
)

// Ensure returns text wrapped exactly once in OpenTag/CloseTag.
// Surrounding whitespace is trimmed and a leading ``` (optionally ```python) fence and a
// trailing ``` fence are removed. Only the fences at the very start and end are stripped.
func Ensure(text string) string {
	text = StripFences(text)
	if strings.Contains(text, OpenTag) {
		return text
	}
	return OpenTag + "\n" + text + "\n" + CloseTag
}

// StripFences trims text and removes one opening fence at the start and one closing
// fence at the end, together with whitespace adjacent to them.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, fence); ok {
		rest = strings.TrimPrefix(rest, fenceLang)
		text = strings.TrimLeftFunc(rest, unicode.IsSpace)
	}
	if rest, ok := strings.CutSuffix(text, fence); ok {
		text = strings.TrimRightFunc(rest, unicode.IsSpace)
	}
	return strings.TrimSpace(text)
}

// Extract returns the trimmed content of the first tagged block in text.
// ok is false when text has no OpenTag followed by a CloseTag.
func Extract(text string) (code string, ok bool) {
	_, after, found := strings.Cut(text, OpenTag)
	if !found {
		return "", false
	}
	inner, _, found := strings.Cut(after, CloseTag)
	if !found {
		return "", false
	}
	return strings.TrimSpace(inner), true
}
