package main

import (
	"bytes"
	"html"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var extensions blackfriday.Extensions

func init() {
	extensions |= blackfriday.Tables
	extensions |= blackfriday.FencedCode
}

// docMeta holds the metadata a document declares through directive
// comments. A fresh value is used per document so nothing leaks between
// files.
type docMeta struct {
	Title           string
	Description     string
	Author          string
	Date            string
	AdditionalFeeds []int
}

// renderMarkdown renders input to HTML while extracting directives into
// meta. Fenced code blocks tagged image_description become a styled div
// instead of a code listing; every other node renders the way blackfriday
// normally renders it.
func renderMarkdown(input []byte, meta *docMeta, feeds *feedTracker) string {
	doc := blackfriday.New(blackfriday.WithExtensions(extensions)).Parse(input)
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{})

	var buf bytes.Buffer
	doc.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.CodeBlock:
			if string(node.Info) == "image_description" {
				buf.WriteString(`<div class="ImageDescription"><p>`)
				buf.WriteString(html.EscapeString(string(node.Literal)))
				buf.WriteString("</p></div>\n")
				return blackfriday.GoToNext
			}

		case blackfriday.HTMLBlock, blackfriday.HTMLSpan:
			// Directives are a metadata side channel only; the comment
			// still renders verbatim (browsers hide it). Spans are
			// checked too because blackfriday only treats a comment as a
			// block when a blank line follows it.
			scanDirective(node.Literal, meta, feeds)
		}

		return renderer.RenderNode(&buf, node, entering)
	})

	return buf.String()
}

// scanDirective checks one raw HTML node for the <!--label: value-->
// directive shape. A later title/description/author/date directive replaces
// an earlier one; additional-feed accumulates. Unknown labels are ignored.
func scanDirective(raw []byte, meta *docMeta, feeds *feedTracker) {
	block := strings.TrimSpace(string(raw))
	if len(block) < len("<!---->") ||
		!strings.HasPrefix(block, "<!--") || !strings.HasSuffix(block, "-->") {
		return
	}

	contents := block[len("<!--") : len(block)-len("-->")]
	label, value, found := strings.Cut(contents, ":")
	if !found {
		return
	}
	value = strings.TrimSpace(value)

	switch label {
	case "title":
		meta.Title = value
	case "description":
		meta.Description = value
	case "author":
		meta.Author = value
	case "date":
		meta.Date = value
	case "additional-feed":
		meta.AdditionalFeeds = append(meta.AdditionalFeeds, feeds.identify(value))
	}
}
