package domain

import "strings"

// DecodeHTMLEntities replaces the entity set transcript providers leak
// into caption text. The replacements run in this exact order, one pass
// each, so a double-encoded sequence like &amp;amp; loses exactly one
// layer per call.
func DecodeHTMLEntities(s string) string {
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return s
}
