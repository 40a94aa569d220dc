package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type state int

const (
	plain state = iota
	inBold
	inItalic
)

// Parse splits text into lines and scans each one. Bold spans are resolved
// before italic ones; an italic span may wrap whole bold spans.
func Parse(text string) []Node {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	var out []Node
	for i := 0; i < len(lines); i++ {
		if i > 0 {
			out = append(out, Node{Kind: Break})
		}
		line := lines[i]
		if label, rest, ok := numbered(line); ok {
			out = append(out, Node{Kind: Item, Label: label, Children: inline(rest)})
			continue
		}
		// "N)" alone on a line takes the next line as its text: the newline
		// is the whitespace after the label.
		if label, ok := bareLabel(line); ok && i+1 < len(lines) && lines[i+1] != "" {
			out = append(out, Node{Kind: Item, Label: label, Children: inline(lines[i+1])})
			i++
			continue
		}
		out = append(out, inline(line)...)
	}
	return out
}

// numbered matches `^\d+\)\s(.+)$`.
func numbered(line string) (label, rest string, ok bool) {
	n := labelLen(line)
	if n == 0 || n == len(line) {
		return "", "", false
	}
	r, size := utf8.DecodeRuneInString(line[n:])
	if !unicode.IsSpace(r) {
		return "", "", false
	}
	rest = line[n+size:]
	if rest == "" {
		return "", "", false
	}
	return line[:n], rest, true
}

func bareLabel(line string) (string, bool) {
	n := labelLen(line)
	return line, n > 0 && n == len(line)
}

// labelLen returns the length of a leading "\d+)" or 0.
func labelLen(line string) int {
	n := 0
	for n < len(line) && line[n] >= '0' && line[n] <= '9' {
		n++
	}
	if n == 0 || n >= len(line) || line[n] != ')' {
		return 0
	}
	return n + 1
}

// piece is one byte of plain text or a whole bold span.
type piece struct {
	c    byte
	bold *Node
	// starry marks a bold span whose content holds a '*'. An italic span may
	// not cross it.
	starry bool
}

func (p piece) isStar() bool { return p.bold == nil && p.c == '*' }

// inline scans one line for **bold** spans, then scans the result for
// *italic* spans. Bold content is scanned for italics on its own.
func inline(line string) []Node {
	var ps []piece
	st := plain
	start := 0
	for i := 0; i < len(line); {
		switch st {
		case plain:
			if strings.HasPrefix(line[i:], "**") && closingBold(line, i+2) >= 0 {
				i += 2
				start = i
				st = inBold
				continue
			}
			ps = append(ps, piece{c: line[i]})
		case inBold:
			if i > start && strings.HasPrefix(line[i:], "**") {
				content := line[start:i]
				bold := &Node{Kind: Bold, Children: italics(bytePieces(content))}
				ps = append(ps, piece{bold: bold, starry: strings.Contains(content, "*")})
				i += 2
				st = plain
				continue
			}
		}
		i++
	}
	return italics(ps)
}

// closingBold returns the index of the first "**" that closes a non-empty span
// opened right before from, or -1.
func closingBold(line string, from int) int {
	if from+1 > len(line) {
		return -1
	}
	j := strings.Index(line[from+1:], "**")
	if j < 0 {
		return -1
	}
	return from + 1 + j
}

func bytePieces(s string) []piece {
	ps := make([]piece, len(s))
	for i := 0; i < len(s); i++ {
		ps[i] = piece{c: s[i]}
	}
	return ps
}

// italics scans pieces for *x* where x holds no '*', the opening '*' is not
// preceded by '*' and the closing one is not followed by '*'. Bold spans count
// as ordinary characters.
func italics(ps []piece) []Node {
	var out, span []Node
	var text []byte
	st := plain
	emit := func(dst []Node) []Node {
		if len(text) > 0 {
			dst = append(dst, textNode(string(text)))
			text = text[:0]
		}
		return dst
	}
	for i := 0; i < len(ps); i++ {
		p := ps[i]
		switch st {
		case plain:
			if p.isStar() && (i == 0 || !ps[i-1].isStar()) && closingItalic(ps, i+1) >= 0 {
				out = emit(out)
				st = inItalic
				continue
			}
		case inItalic:
			if p.isStar() {
				span = emit(span)
				out = append(out, Node{Kind: Italic, Children: span})
				span = nil
				st = plain
				continue
			}
		}
		if p.bold == nil {
			text = append(text, p.c)
			continue
		}
		if st == inItalic {
			span = append(emit(span), *p.bold)
		} else {
			out = append(emit(out), *p.bold)
		}
	}
	return emit(out)
}

func closingItalic(ps []piece, from int) int {
	for j := from; j < len(ps); j++ {
		if ps[j].starry {
			return -1
		}
		if !ps[j].isStar() {
			continue
		}
		if j == from || (j+1 < len(ps) && ps[j+1].isStar()) {
			return -1
		}
		return j
	}
	return -1
}
