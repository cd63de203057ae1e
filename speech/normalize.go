package speech

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	markdown = goldmark.New()

	controlRegex    = regexp.MustCompile(`[\p{Cc}\p{Cf}]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Normalize strips markdown and control characters from spoken text and
// collapses whitespace. The result is the canonical cache key; an empty
// result means there is nothing to speak.
func Normalize(raw string) string {
	plain := stripMarkdown(raw)
	plain = controlRegex.ReplaceAllString(plain, " ")
	plain = whitespaceRegex.ReplaceAllString(plain, " ")
	return strings.TrimSpace(plain)
}

// stripMarkdown walks the markdown AST and keeps only readable text. Code
// blocks and raw HTML are dropped entirely; reading them aloud is noise.
func stripMarkdown(raw string) string {
	source := []byte(raw)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		}
		return ast.WalkContinue, nil
	})

	return b.String()
}
