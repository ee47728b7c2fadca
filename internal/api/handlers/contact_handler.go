package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ContactSender relays contact-form messages to the site owner.
type ContactSender interface {
	SendContactMessage(name, email, message string) error
}

// ContactHandler handles the public contact form.
type ContactHandler struct {
	mailer ContactSender
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(mailer ContactSender) *ContactHandler {
	return &ContactHandler{mailer: mailer}
}

// ContactPayload defines the structure for contact requests.
type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Send forwards a visitor's message by email.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var payload ContactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Name == "" || payload.Email == "" || payload.Message == "" {
		http.Error(w, "Name, email and message are required", http.StatusBadRequest)
		return
	}

	if err := h.mailer.SendContactMessage(payload.Name, payload.Email, payload.Message); err != nil {
		log.Error().Err(err).Str("from", payload.Email).Msg("Failed to send contact email")
		http.Error(w, "Failed to send your message, please try again later", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Your message has been sent"})
}
