package emit

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// inlineParser is shared across calls; goldmark parsers are safe for
// concurrent Parse calls once constructed.
var inlineParser = goldmark.New(goldmark.WithExtensions(extension.Strikethrough)).Parser()

// stripInline removes Markdown inline markup (bold, italic, code span,
// strikethrough, links, images) from text while keeping the content. When
// keepURLs is true, or compression < 2, link/image destinations are
// retained as "text<url>"; otherwise they are dropped.
func stripInline(src string, keepURLs bool, compression int) string {
	keep := keepURLs || compression < 2

	doc := inlineParser.Parse(text.NewReader([]byte(src)))
	var out strings.Builder

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			out.Write(node.Segment.Value([]byte(src)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				out.WriteByte(' ')
			}
		case *ast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					out.Write(t.Segment.Value([]byte(src)))
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			label := inlineLabel(node, src)
			if keep {
				out.WriteString(label + "<" + string(node.Destination) + ">")
			} else {
				out.WriteString(label)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			label := inlineLabel(node, src)
			if keep {
				out.WriteString(label + "<" + string(node.Destination) + ">")
			} else {
				out.WriteString(label)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return out.String()
}

// inlineLabel concatenates the text content of a Link or Image node's
// children, used as the visible label once the markup itself is discarded.
func inlineLabel(n ast.Node, src string) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value([]byte(src)))
		}
	}
	return b.String()
}
