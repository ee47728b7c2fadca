package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/evmarsh/blogforge-be/internal/auth"
	"github.com/evmarsh/blogforge-be/internal/services"
)

// PostHandler handles HTTP requests for blog posts.
type PostHandler struct {
	service  services.PostServiceProvider
	comments services.CommentServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider, comments services.CommentServiceProvider) *PostHandler {
	return &PostHandler{service: service, comments: comments}
}

// PostPayload defines the structure for create and edit requests.
type PostPayload struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImgURL   string `json:"imgUrl"`
}

func postID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// GetAll lists every post.
func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetAllPosts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		http.Error(w, "Failed to list posts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

// Get returns a single post together with its comments.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.service.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("post_id", id).Msg("Failed to get post")
		http.Error(w, "Failed to get post", http.StatusInternalServerError)
		return
	}

	comments, err := h.comments.GetCommentsForPost(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("post_id", id).Msg("Failed to list comments")
		http.Error(w, "Failed to list comments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"post":     post,
		"comments": comments,
	})
}

// Create publishes a new post. Admin only; the guard enforces that before
// this handler runs.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Title == "" || payload.Body == "" {
		http.Error(w, "Title and body are required", http.StatusBadRequest)
		return
	}

	author := auth.UserFrom(r.Context())
	post, err := h.service.CreatePost(r.Context(), payload.Title, payload.Subtitle, payload.Body, payload.ImgURL, author.ID)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTitle) {
			http.Error(w, "A post with this title already exists", http.StatusConflict)
			return
		}
		log.Error().Err(err).Str("title", payload.Title).Msg("Failed to create post")
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(post)
}

// Update edits an existing post. Admin only.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Title == "" || payload.Body == "" {
		http.Error(w, "Title and body are required", http.StatusBadRequest)
		return
	}

	author := auth.UserFrom(r.Context())
	post, err := h.service.UpdatePost(r.Context(), id, payload.Title, payload.Subtitle, payload.Body, payload.ImgURL, author.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			http.Error(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, services.ErrDuplicateTitle):
			http.Error(w, "A post with this title already exists", http.StatusConflict)
		default:
			log.Error().Err(err).Int64("post_id", id).Msg("Failed to update post")
			http.Error(w, "Failed to update post", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(post)
}

// Delete removes a post. Admin only.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("post_id", id).Msg("Failed to delete post")
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
