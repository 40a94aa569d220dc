package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/artem13815/askgemini/pkg/markup"
)

// terminalView renders a Session's output on a text console.
type terminalView struct {
	out   io.Writer
	color bool
	busy  bool
}

func newTerminalView(out io.Writer, color bool) *terminalView {
	return &terminalView{out: out, color: color}
}

func (v *terminalView) Alert(msg string) { fmt.Fprintf(v.out, "! %s\n", msg) }

func (v *terminalView) SetBusy(busy bool) { v.busy = busy }

func (v *terminalView) ShowLoading() { fmt.Fprintln(v.out, "Thinking... Please wait") }

func (v *terminalView) ShowAnswer(nodes []markup.Node) {
	fmt.Fprintln(v.out, markup.Terminal(nodes, v.color))
}

func (v *terminalView) ShowError(msg string) { fmt.Fprintf(v.out, "Error: %s\n", msg) }

// colorEnabled reports whether f is a terminal and NO_COLOR is unset.
func colorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
