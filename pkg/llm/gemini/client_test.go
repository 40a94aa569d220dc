package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/askgemini/pkg/llm"
)

type capturedRequest struct {
	path string
	key  string
	body generateContentRequest
}

func TestGenerate_Success(t *testing.T) {
	captured := make(chan capturedRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := capturedRequest{path: r.URL.Path, key: r.URL.Query().Get("key")}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got.body))
		captured <- got
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"**4**"}]}}]}`))
	}))
	defer srv.Close()

	c := New("k&y", srv.URL+"/v1beta/", "gemini-test", time.Second)
	text, err := c.Generate(context.Background(), "2+2?")
	require.NoError(t, err)
	assert.Equal(t, "**4**", text)

	got := <-captured
	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", got.path)
	assert.Equal(t, "k&y", got.key)
	require.Len(t, got.body.Contents, 1)
	require.Len(t, got.body.Contents[0].Parts, 1)
	assert.Equal(t, "2+2?", got.body.Contents[0].Parts[0].Text)
}

func TestGenerate_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer srv.Close()

	c := New("key", srv.URL, "", time.Second)
	_, err := c.Generate(context.Background(), "hi")

	var upErr *llm.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusTooManyRequests, upErr.Status)
	assert.Contains(t, upErr.Body, "quota")
}

func TestGenerate_NoCandidates(t *testing.T) {
	for name, body := range map[string]string{
		"empty list": `{"candidates":[]}`,
		"missing":    `{}`,
		"no parts":   `{"candidates":[{"content":{"parts":[]}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := New("key", srv.URL, "", time.Second).Generate(context.Background(), "hi")
			assert.ErrorIs(t, err, llm.ErrNoCandidates)
		})
	}
}

func TestGenerate_MissingKeyMakesNoCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	_, err := New("", srv.URL, "", time.Second).Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestGenerate_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New("super-secret", srv.URL, "", time.Second).Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "super-secret"))
}

func TestNew_Defaults(t *testing.T) {
	c := New("key", "", "", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, DefaultModel, c.Model())
	assert.Equal(t, 60*time.Second, c.httpDo.Timeout)
}

func TestPing(t *testing.T) {
	type seen struct{ method, path, key string }
	got := make(chan seen, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- seen{r.Method, r.URL.Path, r.URL.Query().Get("key")}
		_, _ = w.Write([]byte(`{"name":"models/gemini-test"}`))
	}))
	defer srv.Close()

	require.NoError(t, New("k1", srv.URL, "gemini-test", time.Second).Ping(context.Background()))
	s := <-got
	assert.Equal(t, http.MethodGet, s.method)
	assert.Equal(t, "/models/gemini-test", s.path)
	assert.Equal(t, "k1", s.key)
}

func TestPing_UpstreamStatus(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
		}))

		err := New("k1", srv.URL, "gemini-test", time.Second).Ping(context.Background())
		srv.Close()

		var upErr *llm.UpstreamError
		require.True(t, errors.As(err, &upErr), "status %d", status)
		assert.Equal(t, status, upErr.Status)
		assert.Contains(t, upErr.Body, "nope")
	}
}

func TestPing_MissingKeyMakesNoCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	err := New("", srv.URL, "", time.Second).Ping(context.Background())
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
	assert.Zero(t, atomic.LoadInt32(&calls))
}
