package relayclient

import (
	"context"
	"errors"
	"strings"

	"github.com/artem13815/askgemini/pkg/markup"
)

// Messages shown to the user.
const (
	MsgEmptyPrompt   = "Please enter a question!"
	MsgRequestFailed = "Failed to get response"
	MsgNetwork       = "Network error. Please try again."
)

var ErrEmptyPrompt = errors.New("empty prompt")

// Asker is the transport used by a Session. *Client implements it.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// View is the UI state a Session drives. Implementations own their widgets;
// the Session only tells them what to show.
type View interface {
	// Alert reports a problem that needs no round trip (blocking in a browser).
	Alert(msg string)
	SetBusy(busy bool)
	ShowLoading()
	ShowAnswer(nodes []markup.Node)
	ShowError(msg string)
}

// Session sends questions for one front end.
type Session struct {
	client Asker
	view   View
}

func NewSession(client Asker, view View) *Session {
	return &Session{client: client, view: view}
}

// Ask trims input, rejects it if empty, otherwise sends it and renders the
// outcome. The view is busy for exactly the duration of the call.
func (s *Session) Ask(ctx context.Context, input string) error {
	prompt := strings.TrimSpace(input)
	if prompt == "" {
		s.view.Alert(MsgEmptyPrompt)
		return ErrEmptyPrompt
	}

	s.view.SetBusy(true)
	defer s.view.SetBusy(false)
	s.view.ShowLoading()

	text, err := s.client.Ask(ctx, prompt)
	if err != nil {
		s.view.ShowError(ErrorMessage(err))
		return err
	}
	s.view.ShowAnswer(markup.Parse(text))
	return nil
}

// ErrorMessage picks the text shown for a failed call.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MsgRequestFailed
	}
	return MsgNetwork
}
