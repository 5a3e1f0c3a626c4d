// Package ampscript synthesizes AMPscript blocks for Salesforce Marketing
// Cloud pages. Declarative blocks use the %%[ ... ]%% delimiters and inline
// value interpolation uses %%= ... =%%; both are exact textual platform
// conventions and must never be altered.
package ampscript

import "strings"

// BlockType orders a block within the combined platform script.
type BlockType string

const (
	BlockHeader BlockType = "header"
	BlockInline BlockType = "inline"
	BlockFooter BlockType = "footer"
)

// Block is one named, ordered fragment of platform scripting text.
type Block struct {
	Type        BlockType `json:"type"`
	Content     string    `json:"content"`
	Description string    `json:"description,omitempty"`
}

const (
	blockOpen  = "%%["
	blockClose = "]%%"
)

// wrapBlock encloses a script body in the declarative block delimiters.
func wrapBlock(body string) string {
	return blockOpen + "\n" + strings.TrimRight(body, "\n") + "\n" + blockClose
}

// Wrap encloses a raw script snippet in the declarative block delimiters.
// Used for component-level snippets embedded ahead of component markup.
func Wrap(body string) string {
	return wrapBlock(strings.TrimSpace(body))
}

// Inline renders an inline value interpolation for an expression.
func Inline(expr string) string {
	return "%%=" + expr + "=%%"
}

// quote renders a literal AMPscript string, doubling embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// varName derives an AMPscript variable stem from free text: alphanumerics
// and underscores kept, leading character lowered.
func varName(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return "source"
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// CombineBlocks concatenates blocks in the authoritative order: every header
// block first (each preceded by its description), then inline blocks, then
// footer blocks, independent of generation order. Empty input yields empty
// text.
func CombineBlocks(blocks []Block) string {
	if len(blocks) == 0 {
		return ""
	}

	var parts []string
	for _, b := range blocks {
		if b.Type == BlockHeader {
			if b.Description != "" {
				parts = append(parts, "<!-- "+b.Description+" -->\n"+b.Content)
			} else {
				parts = append(parts, b.Content)
			}
		}
	}
	for _, b := range blocks {
		if b.Type == BlockInline {
			parts = append(parts, b.Content)
		}
	}
	for _, b := range blocks {
		if b.Type == BlockFooter {
			parts = append(parts, b.Content)
		}
	}

	return strings.Join(parts, "\n\n")
}
