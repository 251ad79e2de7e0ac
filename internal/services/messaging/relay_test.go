package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	paths  []string
	bodies []map[string]string
}

func (r *recorder) record(req *http.Request) map[string]string {
	body := map[string]string{}
	_ = json.NewDecoder(req.Body).Decode(&body)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, req.URL.Path)
	r.bodies = append(r.bodies, body)
	return body
}

func newTelegram(t *testing.T, handler http.HandlerFunc) *TelegramRelay {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	relay, err := NewTelegramRelay(&TelegramConfig{
		BotToken:   "123:ABC",
		APIURL:     srv.URL,
		Timeout:    time.Second,
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)
	return relay
}

func TestTelegramRelay_SendMessage(t *testing.T) {
	rec := &recorder{}
	relay := newTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	})

	require.NoError(t, relay.Send(context.Background(), "1376992445", "Olá!"))
	require.Len(t, rec.paths, 1)
	assert.Equal(t, "/bot123:ABC/sendMessage", rec.paths[0])
	assert.Equal(t, map[string]string{"chat_id": "1376992445", "text": "Olá!"}, rec.bodies[0])
}

func TestTelegramRelay_ClientErrorIsNotRetried(t *testing.T) {
	rec := &recorder{}
	relay := newTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	err := relay.Send(context.Background(), "1", "oi")
	require.Error(t, err)
	var relayErr *RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, ErrTypeProvider, relayErr.Type)
	assert.Contains(t, relayErr.Message, "chat not found")
	assert.Len(t, rec.paths, 1)
}

func TestTelegramRelay_RetriesServerErrors(t *testing.T) {
	rec := &recorder{}
	relay := newTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.Header().Set("Content-Type", "application/json")
		if len(rec.paths) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Gateway"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	require.NoError(t, relay.Send(context.Background(), "1", "oi"))
	assert.Len(t, rec.paths, 3)
}

func TestTelegramRelay_SplitsLongReplies(t *testing.T) {
	rec := &recorder{}
	relay := newTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	text := strings.Repeat("palavra ", 1200)
	require.NoError(t, relay.Send(context.Background(), "1", text))
	require.Len(t, rec.bodies, 3)
	for _, body := range rec.bodies {
		assert.LessOrEqual(t, utf8.RuneCountInString(body["text"]), maxTelegramMessage)
	}
}

func TestTelegramRelay_RequiresToken(t *testing.T) {
	_, err := NewTelegramRelay(&TelegramConfig{APIURL: DefaultTelegramAPIURL, Timeout: time.Second})
	assert.Error(t, err)
}

func TestCallbackRelay_Posts(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	relay, err := NewCallbackRelay(&CallbackConfig{URL: srv.URL + "/webhook/reply", Timeout: time.Second, MaxRetries: 1})
	require.NoError(t, err)

	require.NoError(t, relay.Send(context.Background(), "5511999999999", "Tudo certo"))
	require.Len(t, rec.bodies, 1)
	assert.Equal(t, "/webhook/reply", rec.paths[0])
	assert.Equal(t, map[string]string{"to": "5511999999999", "response": "Tudo certo"}, rec.bodies[0])
}

func TestCallbackRelay_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	relay, err := NewCallbackRelay(&CallbackConfig{URL: srv.URL, Timeout: time.Second, MaxRetries: 2, RetryDelay: time.Millisecond})
	require.NoError(t, err)
	assert.Error(t, relay.Send(context.Background(), "5511", "oi"))
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"curto"}, splitMessage("curto", 10))
	assert.Equal(t, []string{"abcd", "efgh"}, splitMessage("abcd efgh", 5))
	assert.Equal(t, []string{"abcdefghij", "kl"}, splitMessage("abcdefghijkl", 10))
}
