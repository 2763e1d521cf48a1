package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontdesk/pkg/logger"
)

const testSecret = "test-app-secret"

func signBody(body string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
}

func TestWhatsAppSignatureVerification(t *testing.T) {
	body := "Body=book+20-22+June&From=whatsapp%3A%2B4915112345678"

	tests := []struct {
		name       string
		signature  string
		wantStatus int
	}{
		{
			name:       "valid signature",
			signature:  signBody(body),
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid signature without prefix",
			signature:  strings.TrimPrefix(signBody(body), "sha256="),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing signature",
			signature:  "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong signature",
			signature:  "sha256=deadbeef",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawBody string
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				sawBody = string(b)
				w.WriteHeader(http.StatusOK)
			})

			handler := WhatsAppSignatureVerification(testSecret, testLogger())(inner)

			req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set("X-Hub-Signature-256", tt.signature)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && sawBody != body {
				t.Errorf("handler saw body %q, want %q (body must be restored)", sawBody, body)
			}
		})
	}
}
