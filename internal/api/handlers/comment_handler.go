package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/evmarsh/blogforge-be/internal/auth"
	"github.com/evmarsh/blogforge-be/internal/services"
)

// CommentHandler handles HTTP requests for post comments.
type CommentHandler struct {
	service services.CommentServiceProvider
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service services.CommentServiceProvider) *CommentHandler {
	return &CommentHandler{service: service}
}

// CommentPayload defines the structure for comment requests.
type CommentPayload struct {
	Text string `json:"text"`
}

// Create adds a comment to a post. Requires a logged-in account; the guard
// handles that before this handler runs.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var payload CommentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Text == "" {
		http.Error(w, "Comment text is required", http.StatusBadRequest)
		return
	}

	author := auth.UserFrom(r.Context())
	comment, err := h.service.CreateComment(r.Context(), id, author.ID, payload.Text)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("post_id", id).Int64("user_id", author.ID).Msg("Failed to create comment")
		http.Error(w, "Failed to create comment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(comment)
}
