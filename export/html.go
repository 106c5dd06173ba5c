package export

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/agiangrant/inspector/render"
	"github.com/agiangrant/inspector/state"
)

// voidElements cannot have children; text content is dropped for them.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// HTML renders the preview element with default options.
func HTML(s state.StyleState, classes string, style render.Style) (string, error) {
	return defaultFormatter.HTML(s, classes, style)
}

// HTML renders one element: tag (div when empty) with id, class, style and,
// for a and button elements, href attributes, wrapping the escaped text
// content. Empty attributes are omitted.
func (f *Formatter) HTML(s state.StyleState, classes string, style render.Style) (string, error) {
	tag := strings.ToLower(strings.TrimSpace(s.Tag))
	if tag == "" {
		tag = "div"
	}

	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	attr := func(key, val string) {
		if val != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
		}
	}
	attr("id", strings.TrimSpace(s.ElementID))
	attr("class", strings.Join(strings.Fields(classes), " "))
	attr("style", StyleAttr(style))
	if tag == "a" || tag == "button" {
		attr("href", strings.TrimSpace(s.Link))
	}

	if !voidElements[tag] && s.TextContent != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: s.TextContent})
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// StyleAttr flattens a style mapping into a style attribute value,
// converting keys back to hyphenated CSS names.
func StyleAttr(style render.Style) string {
	decls := style.Declarations()
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, render.Hyphenate(d.Property)+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}
