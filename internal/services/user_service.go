package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/evmarsh/blogforge-be/internal/auth"
	"github.com/evmarsh/blogforge-be/internal/models"
)

// UserServiceProvider defines the interface for account services.
type UserServiceProvider interface {
	Register(ctx context.Context, email, password, name, profilePic string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
}

// UserService is the account directory: it owns registration, credential
// checks and account lookups over the users table.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account with a hashed password. The email must not
// already be registered: a pre-check catches the common case, and the
// database's unique constraint on email settles concurrent races, so two
// simultaneous registrations of one address can never both succeed. Either
// way the caller sees auth.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, email, password, name, profilePic string) (models.User, error) {
	var existing int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM users WHERE email = ?", email).Scan(&existing)
	if err == nil {
		return models.User{}, auth.ErrDuplicateEmail
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("failed to check for existing account: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users(email, password_hash, name, profile_pic) VALUES(?, ?, ?, ?)",
		email, hashed, name, profilePic)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost a race against a concurrent registration.
			return models.User{}, auth.ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("failed to create account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to read new account id: %w", err)
	}

	return s.GetUserByID(ctx, id)
}

// Authenticate verifies an account's credentials. Unknown emails and wrong
// passwords are distinct results on purpose, so the frontend can steer
// unknown visitors toward registration. Finding more than one row for an
// email means the uniqueness invariant is broken in the store; that is
// surfaced as auth.ErrAmbiguousAccount and logged, never resolved silently.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, email, password_hash, name, profile_pic, created_at FROM users WHERE email = ?", email)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to look up account: %w", err)
	}
	defer rows.Close()

	var matches []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.ProfilePic, &user.CreatedAt); err != nil {
			return models.User{}, fmt.Errorf("failed to scan account row: %w", err)
		}
		matches = append(matches, user)
	}
	if err := rows.Err(); err != nil {
		return models.User{}, fmt.Errorf("failed to read account rows: %w", err)
	}

	switch len(matches) {
	case 0:
		return models.User{}, auth.ErrNoSuchAccount
	case 1:
		// fall through to the password check
	default:
		log.Error().Str("email", email).Int("count", len(matches)).Msg("Email uniqueness invariant violated in users table")
		return models.User{}, auth.ErrAmbiguousAccount
	}

	user := matches[0]
	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrCorruptCredential) {
			log.Error().Err(err).Int64("user_id", user.ID).Msg("Stored password digest is corrupt")
		}
		return models.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single account by its id.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, name, profile_pic, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.ProfilePic, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, auth.ErrNoSuchAccount
		}
		return models.User{}, fmt.Errorf("failed to get account by id: %w", err)
	}
	return user, nil
}

// isUniqueViolation reports whether err is the driver's unique-constraint
// failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
