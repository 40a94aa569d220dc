package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/askgemini/pkg/relayclient"
)

type scriptedAsker struct {
	answers map[string]string
	asked   []string
}

func (s *scriptedAsker) Ask(_ context.Context, prompt string) (string, error) {
	s.asked = append(s.asked, prompt)
	if a, ok := s.answers[prompt]; ok {
		return a, nil
	}
	return "", &relayclient.APIError{Status: 500, Message: "No response from Gemini AI"}
}

func TestInteractive(t *testing.T) {
	asker := &scriptedAsker{answers: map[string]string{"2+2?": "**4**\n1) four"}}
	var out bytes.Buffer
	session := relayclient.NewSession(asker, newTerminalView(&out, false))

	interactive(context.Background(), session, strings.NewReader("2+2?\n\nunknown\nexit\nnever\n"), &out)

	assert.Equal(t, []string{"2+2?", "unknown"}, asker.asked)
	got := out.String()
	assert.Contains(t, got, "4\n1) four\n")
	assert.Contains(t, got, "! Please enter a question!")
	assert.Contains(t, got, "Error: No response from Gemini AI")
	assert.NotContains(t, got, "never")
}

func TestTerminalView_Color(t *testing.T) {
	var out bytes.Buffer
	view := newTerminalView(&out, true)
	session := relayclient.NewSession(&scriptedAsker{answers: map[string]string{"q": "*hi*"}}, view)

	err := session.Ask(context.Background(), "q")

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "\x1b[3mhi\x1b[23m")
	assert.False(t, view.busy)
}

func TestTerminalView_ErrorReleasesBusy(t *testing.T) {
	var out bytes.Buffer
	view := newTerminalView(&out, false)
	err := relayclient.NewSession(&scriptedAsker{}, view).Ask(context.Background(), "q")

	var apiErr *relayclient.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.False(t, view.busy)
}
