package markup

import (
	"html"
	"strings"
)

// Format converts an answer to an HTML fragment. Text is escaped, so the result
// is safe to insert into a page. Format is not idempotent: feeding its own
// output back in escapes the markup again.
func Format(text string) string {
	return HTML(Parse(text))
}

// HTML renders nodes as an HTML fragment.
func HTML(nodes []Node) string {
	var b strings.Builder
	writeHTML(&b, nodes)
	return b.String()
}

func writeHTML(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n.Kind {
		case Text:
			b.WriteString(html.EscapeString(n.Text))
		case Bold:
			b.WriteString("<strong>")
			writeHTML(b, n.Children)
			b.WriteString("</strong>")
		case Italic:
			b.WriteString("<em>")
			writeHTML(b, n.Children)
			b.WriteString("</em>")
		case Item:
			b.WriteString(`<div class="numbered-item"><strong>`)
			b.WriteString(html.EscapeString(n.Label))
			b.WriteString("</strong> ")
			writeHTML(b, n.Children)
			b.WriteString("</div>")
		case Break:
			b.WriteString("<br>")
		}
	}
}

const (
	ansiBold      = "\x1b[1m"
	ansiBoldOff   = "\x1b[22m"
	ansiItalic    = "\x1b[3m"
	ansiItalicOff = "\x1b[23m"
)

// Terminal renders nodes for a text console. With color disabled the markers
// are dropped and only the text remains.
func Terminal(nodes []Node, color bool) string {
	var b strings.Builder
	writeTerminal(&b, nodes, color)
	return b.String()
}

func writeTerminal(b *strings.Builder, nodes []Node, color bool) {
	wrap := func(on, off string, children []Node) {
		if color {
			b.WriteString(on)
		}
		writeTerminal(b, children, color)
		if color {
			b.WriteString(off)
		}
	}
	for _, n := range nodes {
		switch n.Kind {
		case Text:
			b.WriteString(n.Text)
		case Bold:
			wrap(ansiBold, ansiBoldOff, n.Children)
		case Italic:
			wrap(ansiItalic, ansiItalicOff, n.Children)
		case Item:
			wrap(ansiBold, ansiBoldOff, []Node{textNode(n.Label)})
			b.WriteByte(' ')
			writeTerminal(b, n.Children, color)
		case Break:
			b.WriteByte('\n')
		}
	}
}
