// Package markup renders the small markdown subset the assistant is asked to
// answer in: **bold**, *italic* and "1)"-style numbered lines. Anything else is
// left as literal text.
package markup

// Kind identifies a node produced by Parse.
type Kind int

const (
	Text Kind = iota
	Bold
	Italic
	Item  // numbered line, Label holds "N)"
	Break // line break
)

// Node is one element of a parsed answer. Text nodes carry raw (unescaped)
// text; Bold, Italic and Item nodes carry Children.
type Node struct {
	Kind     Kind
	Text     string
	Label    string
	Children []Node
}

func textNode(s string) Node { return Node{Kind: Text, Text: s} }
