package textsource

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "header": true, "footer": true,
	"ul": true, "ol": true, "dt": true, "dd": true, "pre": true, "blockquote": true,
}

// htmlText renders an HTML document as text with one line per block element.
func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var sb strings.Builder
	walk(doc.Selection, &sb)

	var lines []string
	for _, l := range strings.Split(sb.String(), "\n") {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func walk(sel *goquery.Selection, sb *strings.Builder) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch name := goquery.NodeName(s); name {
		case "#text":
			sb.WriteString(s.Text())
		case "#comment", "script", "style", "noscript", "head", "template":
		case "br":
			sb.WriteString("\n")
		case "td", "th":
			sb.WriteString(" ")
			walk(s, sb)
			sb.WriteString(" ")
		default:
			if blockTags[name] {
				sb.WriteString("\n")
			}
			walk(s, sb)
			if blockTags[name] {
				sb.WriteString("\n")
			}
		}
	})
}
