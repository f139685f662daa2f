package themes

import (
	"html"
	"sort"
	"strings"
)

// Node is one element of a rendered page tree. Renderers emit trees of
// nodes instead of markup strings so callers can serve them as JSON for
// client hydration or flatten them to HTML server-side.
type Node struct {
	Kind     string            `json:"kind,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// El creates an element node.
func El(kind string, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// Attr sets an attribute and returns the node for chaining.
func (n *Node) Attr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Class sets the class attribute.
func (n *Node) Class(value string) *Node {
	return n.Attr("class", value)
}

// Append adds children and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// voidElements never carry children in HTML output.
var voidElements = map[string]bool{
	"img": true,
	"br":  true,
	"hr":  true,
}

// HTML flattens the tree to escaped HTML. Attributes are written in
// sorted order so output is deterministic.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *Node) writeHTML(b *strings.Builder) {
	if n.Kind == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Kind)
	if len(n.Attrs) > 0 {
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(n.Attrs[k]))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')

	if voidElements[n.Kind] {
		return
	}
	for _, c := range n.Children {
		c.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(n.Kind)
	b.WriteByte('>')
}
