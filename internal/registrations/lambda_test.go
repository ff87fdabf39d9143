package registrations

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func lambdaEvent(method, body string, b64 bool) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RawPath:         "/register",
		Body:            body,
		IsBase64Encoded: b64,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: method, Path: "/register"},
		},
	}
}

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name       string
		event      events.APIGatewayV2HTTPRequest
		wantStatus int
		wantBody   string
		wantPuts   int
	}{
		{
			name:       "created",
			event:      lambdaEvent(http.MethodPost, `{"email":"a@b.com","name":"Ann","role":"organizer"}`, false),
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"Registration successful","id":"id-1"}`,
			wantPuts:   1,
		},
		{
			name:       "base64 body",
			event:      lambdaEvent(http.MethodPost, base64.StdEncoding.EncodeToString([]byte(`{"email":"a@b.com"}`)), true),
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"Registration successful","id":"id-1"}`,
			wantPuts:   1,
		},
		{
			name:       "missing email",
			event:      lambdaEvent(http.MethodPost, `{"name":"Ann"}`, false),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Email is required"}`,
		},
		{
			name:       "no body",
			event:      lambdaEvent(http.MethodPost, "", false),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Email is required"}`,
		},
		{
			name:       "preflight",
			event:      lambdaEvent(http.MethodOptions, `garbage`, true),
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{}
			h := NewHandler(newTestService(store), nil)

			resp, err := h.HandleEvent(context.Background(), tt.event)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody == "" {
				assert.Empty(t, resp.Body)
			} else {
				assert.JSONEq(t, tt.wantBody, resp.Body)
			}
			assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
			assert.Equal(t, "POST, OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
			assert.Equal(t, "Content-Type", resp.Headers["Access-Control-Allow-Headers"])
			assert.Len(t, store.puts, tt.wantPuts)
		})
	}
}

func TestHandleEventBadBase64(t *testing.T) {
	store := &memStore{}
	h := NewHandler(newTestService(store), nil)

	resp, err := h.HandleEvent(context.Background(), lambdaEvent(http.MethodPost, "%%%", true))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Body, "decode base64 body")
	assert.Empty(t, store.puts)
}

func TestHandleEventLogsRawEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := NewHandler(newTestService(&memStore{}), zap.New(core))

	_, err := h.HandleEvent(context.Background(), lambdaEvent(http.MethodPost, `{"email":"a@b.com"}`, false))
	require.NoError(t, err)

	entries := logs.FilterMessage("received event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotContains(t, fields, "error")

	raw, ok := fields["event"].(string)
	require.True(t, ok, "event logged as %T", fields["event"])
	var logged events.APIGatewayV2HTTPRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &logged))
	assert.Equal(t, `{"email":"a@b.com"}`, logged.Body)
	assert.Equal(t, http.MethodPost, logged.RequestContext.HTTP.Method)
}
