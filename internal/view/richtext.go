package view

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// RichText is sanitized markup safe to interpolate into templates. Backend
// copy may carry markdown; it is rendered and scrubbed before being trusted.
type RichText struct {
	HTML template.HTML
}

var (
	markdown  = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

// Markdown renders backend-supplied markdown and sanitizes the result.
func Markdown(src string) RichText {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		// Treat unrenderable input as plain text rather than dropping it.
		return PlainText(src)
	}
	clean := sanitizer.SanitizeBytes(buf.Bytes())
	return RichText{HTML: template.HTML(clean)}
}

// PlainText escapes a raw string into RichText.
func PlainText(src string) RichText {
	return RichText{HTML: template.HTML(template.HTMLEscapeString(src))}
}
