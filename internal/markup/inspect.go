// Package markup inspects generated HTML documents: structural counts,
// component ids and accessibility findings used by validation reporting and
// the CLI.
package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Audit summarizes one generated document.
type Audit struct {
	Title            string   `json:"title,omitempty"`
	Lang             string   `json:"lang,omitempty"`
	ComponentIDs     []string `json:"componentIds,omitempty"`
	Headings         []string `json:"headings,omitempty"`
	Links            int      `json:"links"`
	Images           int      `json:"images"`
	ImagesMissingAlt int      `json:"imagesMissingAlt"`
	Forms            int      `json:"forms"`
	Scripts          int      `json:"scripts"`
	Stylesheets      int      `json:"stylesheets"`
	HasMainLandmark  bool     `json:"hasMainLandmark"`
}

// Inspect parses a generated document and collects its audit summary.
func Inspect(markup string) (*Audit, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse generated HTML: %w", err)
	}

	audit := &Audit{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := getAttr(n, "id"); id != "" {
				audit.ComponentIDs = append(audit.ComponentIDs, id)
			}

			switch n.Data {
			case "html":
				audit.Lang = getAttr(n, "lang")
			case "title":
				audit.Title = strings.TrimSpace(extractText(n))
			case "h1", "h2", "h3", "h4", "h5", "h6":
				if text := strings.TrimSpace(extractText(n)); text != "" {
					audit.Headings = append(audit.Headings, text)
				}
			case "a":
				audit.Links++
			case "img":
				audit.Images++
				if getAttr(n, "alt") == "" {
					audit.ImagesMissingAlt++
				}
			case "form":
				audit.Forms++
			case "script":
				audit.Scripts++
			case "link":
				if strings.EqualFold(getAttr(n, "rel"), "stylesheet") {
					audit.Stylesheets++
				}
			case "main":
				if getAttr(n, "role") == "main" {
					audit.HasMainLandmark = true
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return audit, nil
}

// Findings converts an audit into human-readable advisories.
func (a *Audit) Findings() []string {
	var out []string
	if a.Title == "" {
		out = append(out, "document has no title element")
	}
	if a.Lang == "" {
		out = append(out, "html element is missing a lang attribute")
	}
	if a.ImagesMissingAlt > 0 {
		out = append(out, fmt.Sprintf("%d of %d images missing alt text", a.ImagesMissingAlt, a.Images))
	}
	if !a.HasMainLandmark {
		out = append(out, "no main landmark with role attribute found")
	}
	return out
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(extractText(c))
	}
	return b.String()
}
