// Command ask is a terminal front end for the relay: it sends a question to
// /ask and prints the formatted answer.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/artem13815/askgemini/pkg/relayclient"
)

var quickQuestions = []string{
	"What is artificial intelligence?",
	"Explain how the internet works in simple terms",
	"Give me 3 tips to learn programming",
	"What are the health benefits of regular exercise?",
}

func main() {
	server := flag.String("server", envOr("ASK_SERVER", relayclient.DefaultBaseURL), "relay base URL")
	timeout := flag.Duration("timeout", 90*time.Second, "request timeout")
	quick := flag.Int("quick", 0, "ask predefined question `N` (see -list)")
	list := flag.Bool("list", false, "list predefined questions")
	flag.Parse()

	if *list {
		for i, q := range quickQuestions {
			fmt.Printf("%d) %s\n", i+1, q)
		}
		return
	}

	view := newTerminalView(os.Stdout, colorEnabled(os.Stdout))
	session := relayclient.NewSession(relayclient.New(*server, *timeout), view)
	ctx := context.Background()

	switch {
	case *quick != 0:
		if *quick < 1 || *quick > len(quickQuestions) {
			fmt.Fprintf(os.Stderr, "-quick must be between 1 and %d\n", len(quickQuestions))
			os.Exit(2)
		}
		exitOnError(session.Ask(ctx, quickQuestions[*quick-1]))
	case flag.NArg() > 0:
		exitOnError(session.Ask(ctx, strings.Join(flag.Args(), " ")))
	default:
		interactive(ctx, session, os.Stdin, os.Stdout)
	}
}

// interactive asks one question per input line until EOF or "exit".
func interactive(ctx context.Context, session *relayclient.Session, in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		line := sc.Text()
		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return
		}
		_ = session.Ask(ctx, line)
		fmt.Fprint(out, "\n> ")
	}
}

func exitOnError(err error) {
	if err != nil {
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
