package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"frontdesk/internal/assistant/service"
	apperrors "frontdesk/pkg/errors"
	httputil "frontdesk/pkg/http"
	"frontdesk/pkg/logger"
	"frontdesk/pkg/sanitizer"
)

// WebhookResponse mirrors what the messaging provider expects back from
// an inbound-message webhook.
type WebhookResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type WebhookHandler struct {
	service service.AssistantService
	log     *logger.Logger
}

func NewWebhookHandler(service service.AssistantService, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		log:     log,
	}
}

// Message handles the provider's form-encoded webhook: Body carries the
// guest's text, From the "whatsapp:"-prefixed number.
func (h *WebhookHandler) Message(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid form payload")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Message", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	body := r.PostForm.Get("Body")
	if body == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Body cannot be empty")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Message", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	sender := sanitizer.NormalizePhone(r.PostForm.Get("From"))
	if sender == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("From must be a valid phone number")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Message", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	reply, err := h.service.Reply(r.Context(), sender, body)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Message", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, WebhookResponse{
		Message: reply,
		Status:  "sent",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Message", "operation", "WriteJSON", "error", err)
	}
}

func (h *WebhookHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/webhook", h.Message)
}
