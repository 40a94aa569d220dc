package ask

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/askgemini/pkg/llm"
)

type fakeModel struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeModel) Model() string { return "fake-model" }

func TestAsk_Success(t *testing.T) {
	m := &fakeModel{text: "**4**"}
	uc := NewService(m, true)

	res, err := uc.Ask(context.Background(), Query{Prompt: "2+2?"})
	require.NoError(t, err)

	assert.Equal(t, "**4**", res.Text)
	assert.Equal(t, "fake-model", res.Model)
	require.Len(t, m.prompts, 1)
	assert.Equal(t, Instruction+"2+2?", m.prompts[0])
	assert.Contains(t, m.prompts[0], "maximum 600 words")
}

func TestAsk_EmptyPrompt(t *testing.T) {
	for _, p := range []string{"", "   ", "\n\t"} {
		m := &fakeModel{}
		_, err := NewService(m, true).Ask(context.Background(), Query{Prompt: p})
		assert.ErrorIs(t, err, ErrEmptyPrompt)
		assert.Empty(t, m.prompts)
	}
}

func TestAsk_NotConfigured(t *testing.T) {
	m := &fakeModel{}
	_, err := NewService(m, false).Ask(context.Background(), Query{Prompt: "hi"})

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, m.prompts)
}

func TestAsk_ErrorMapping(t *testing.T) {
	up := &llm.UpstreamError{Provider: "gemini", Status: http.StatusTooManyRequests}
	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, err error)
	}{
		{"no candidates", llm.ErrNoCandidates, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrEmptyResponse)
		}},
		{"missing key", llm.ErrMissingAPIKey, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrNotConfigured)
		}},
		{"upstream status", up, func(t *testing.T, err error) {
			var got *llm.UpstreamError
			require.True(t, errors.As(err, &got))
			assert.Equal(t, http.StatusTooManyRequests, got.Status)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(&fakeModel{err: tt.err}, true).Ask(context.Background(), Query{Prompt: "hi"})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
