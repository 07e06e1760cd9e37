package ncnews

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

type headingFlattener struct{}

// Transform turns headings of any level into h6, so an article body cannot
// outweigh the title it is displayed under.
func (m *headingFlattener) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	for n := node.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() == ast.KindHeading {
			heading := n.(*ast.Heading)
			heading.Level = 6
		}
	}
}

var flattener = headingFlattener{}
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.NewLinkify(
			extension.WithLinkifyAllowedProtocols([][]byte{
				[]byte("http:"),
				[]byte("https:"),
			}),
		),
	),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(util.PrioritizedValue{Value: &flattener, Priority: 100}),
	),
)

var sanitizer = bluemonday.UGCPolicy()

// renderBody renders a markdown body into sanitized HTML.
func renderBody(body string) template.HTML {
	buf := bytes.NewBufferString("")
	err := md.Convert([]byte(body), buf)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(body))
	}

	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

func withBodyHTML(a *Article) *Article {
	a.BodyHTML = renderBody(a.Body)
	return a
}
