package whatsapp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "text", Service: "test"})
}

func TestSenderSend(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotBody, gotUser string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotFrom = r.PostForm.Get("From")
		gotTo = r.PostForm.Get("To")
		gotBody = r.PostForm.Get("Body")
		gotUser, _, _ = r.BasicAuth()
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sender := NewSender(server.URL, "AC123", "token", "+3550000000", testLogger())
	err := sender.Send(context.Background(), "+4915112345678", "your stay is confirmed")
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "whatsapp:+3550000000", gotFrom)
	assert.Equal(t, "whatsapp:+4915112345678", gotTo)
	assert.Equal(t, "your stay is confirmed", gotBody)
	assert.Equal(t, "AC123", gotUser)
}

func TestSenderSendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid number", http.StatusBadRequest)
	}))
	defer server.Close()

	sender := NewSender(server.URL, "AC123", "token", "+3550000000", testLogger())
	err := sender.Send(context.Background(), "+4915112345678", "hello")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
}
