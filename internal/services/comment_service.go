package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evmarsh/blogforge-be/internal/models"
)

// CommentServiceProvider defines the interface for comment services.
type CommentServiceProvider interface {
	GetCommentsForPost(ctx context.Context, postID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, postID, authorID int64, text string) (models.Comment, error)
}

// CommentService provides business logic for post comments.
type CommentService struct {
	db *sql.DB
}

// NewCommentService creates a new CommentService.
func NewCommentService(db *sql.DB) *CommentService {
	return &CommentService{db: db}
}

const commentColumns = `c.id, c.post_id, c.author_id, u.name, u.profile_pic, c.text, c.created_at`

// GetCommentsForPost lists a post's comments, oldest first.
func (s *CommentService) GetCommentsForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+commentColumns+" FROM comments c JOIN users u ON u.id = c.author_id WHERE c.post_id = ? ORDER BY c.id", postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.AuthorName,
			&comment.AuthorPic, &comment.Text, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// CreateComment attaches a comment by an authenticated user to a post. The
// post must exist; a dangling post id surfaces as ErrPostNotFound.
func (s *CommentService) CreateComment(ctx context.Context, postID, authorID int64, text string) (models.Comment, error) {
	var exists int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM posts WHERE id = ?", postID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Comment{}, ErrPostNotFound
		}
		return models.Comment{}, fmt.Errorf("failed to check post: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO comments(post_id, author_id, text) VALUES(?, ?, ?)", postID, authorID, text)
	if err != nil {
		return models.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Comment{}, fmt.Errorf("failed to read new comment id: %w", err)
	}

	var comment models.Comment
	row := s.db.QueryRowContext(ctx,
		"SELECT "+commentColumns+" FROM comments c JOIN users u ON u.id = c.author_id WHERE c.id = ?", id)
	if err := row.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.AuthorName,
		&comment.AuthorPic, &comment.Text, &comment.CreatedAt); err != nil {
		return models.Comment{}, fmt.Errorf("failed to load new comment: %w", err)
	}
	return comment, nil
}
