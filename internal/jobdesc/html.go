package jobdesc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// IsHTML reports whether description content looks like an HTML document
// rather than plain text.
func IsHTML(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") || strings.HasPrefix(head, "<body")
}

// StripHTML reduces an HTML description to plain text lines suitable for
// StructureText. Script, style, and chrome elements are removed; headings,
// paragraphs, and list items each become one line. On parse failure the raw
// content is returned so downstream parsing still gets a best-effort input.
func StripHTML(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	doc.Find("script, style, nav, footer, header").Remove()

	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(lines, "\n")
}

// Normalize accepts either HTML or plain text description content and
// returns plain text.
func Normalize(content string) string {
	if IsHTML(content) {
		return StripHTML(content)
	}
	return content
}
