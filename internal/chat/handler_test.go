package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthub/restaurant-backend/internal/llm"
)

func newTestHandler(client llm.Client) *Handler {
	svc := NewService(client, &fakeMenu{}, DefaultInfo(), nil)
	return NewHandler(svc, nil)
}

func postChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.PostMessage(rec, req)
	return rec
}

func TestPostMessageSuccess(t *testing.T) {
	client := &fakeLLM{resp: llm.Response{Text: "Hi! How can I help?"}}
	rec := postChat(t, newTestHandler(client), `{"message":"Hello there"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hi! How can I help?", resp["reply"])
}

func TestPostMessageReservationBypassesModel(t *testing.T) {
	client := &fakeLLM{}
	rec := postChat(t, newTestHandler(client), `{"message":"Can I book a table?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "Reservation page")
	assert.Empty(t, client.requests)
}

func TestPostMessageValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing message", `{}`},
		{"empty message", `{"message":""}`},
		{"whitespace message", `{"message":"   "}`},
		{"malformed json", `{"message":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(t, newTestHandler(&fakeLLM{}), tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Message is required.", resp["error"])
		})
	}
}

func TestPostMessageGenerationFailure(t *testing.T) {
	client := &fakeLLM{err: llm.ErrExhausted}
	rec := postChat(t, newTestHandler(client), `{"message":"Hello there"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sorry, I encountered an internal error. Please try again later.", resp["error"])
	assert.NotContains(t, resp["error"], "exhausted", "internal detail must not leak")
}

func TestPostMessageContextReachesModel(t *testing.T) {
	client := &ctxCheckLLM{}
	rec := postChat(t, newTestHandler(client), `{"message":"Hello there"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, client.sawContext)
}

type ctxCheckLLM struct {
	sawContext bool
}

func (c *ctxCheckLLM) Complete(ctx context.Context, _ llm.Request) (llm.Response, error) {
	c.sawContext = ctx != nil
	return llm.Response{Text: "ok"}, nil
}
