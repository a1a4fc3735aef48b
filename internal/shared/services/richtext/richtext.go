// Package richtext cleans free text submitted by residents and staff and
// renders comment markdown for display.
package richtext

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldhtml "github.com/yuin/goldmark/renderer/html"
)

// markup matches what an HTML parser would read as a tag, comment or
// processing instruction. Any other '<' is text.
var markup = regexp.MustCompile(`<(?:/?[A-Za-z][A-Za-z0-9:-]*(?:\s[^<>]*)?/?|!--[\s\S]*?--|![A-Za-z][^<>]*|\?[^<>]*)>`)

type Service interface {
	// Clean strips every HTML tag and returns plain text.
	Clean(text string) string
	// RenderMarkdown converts GitHub flavoured markdown into sanitized HTML.
	RenderMarkdown(text string) (string, error)
}

type service struct {
	md     goldmark.Markdown
	strict *bluemonday.Policy
	ugc    *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			goldhtml.WithHardWraps(),
		),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)

	return &service{
		md:     md,
		strict: bluemonday.StrictPolicy(),
		ugc:    ugc,
	}
}

func (s *service) Clean(text string) string {
	// StrictPolicy entity-encodes what it keeps; store the plain text.
	return strings.TrimSpace(html.UnescapeString(s.strict.Sanitize(escapeStrayLT(text))))
}

// escapeStrayLT encodes every '<' that does not open markup, so "a<b" is
// kept as text instead of being parsed as an unterminated tag.
func escapeStrayLT(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range markup.FindAllStringIndex(text, -1) {
		b.WriteString(strings.ReplaceAll(text[last:m[0]], "<", "&lt;"))
		b.WriteString(text[m[0]:m[1]])
		last = m[1]
	}
	b.WriteString(strings.ReplaceAll(text[last:], "<", "&lt;"))
	return b.String()
}

func (s *service) RenderMarkdown(text string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return s.ugc.Sanitize(buf.String()), nil
}
