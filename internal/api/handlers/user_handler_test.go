package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmarsh/blogforge-be/internal/auth"
	"github.com/evmarsh/blogforge-be/internal/models"
)

func newUserHandlerFixture() (*UserHandler, *fakeUserService, *auth.Sessions) {
	svc := newFakeUserService()
	sessions := auth.NewSessions("test-secret", svc, false)
	return NewUserHandler(svc, sessions), svc, sessions
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestUserHandler_Register(t *testing.T) {
	handler, _, sessions := newUserHandlerFixture()

	body := `{"email":"alice@example.com","password":"pw1","name":"Alice","profilePic":"url"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "Alice", resp.User.Name)

	// Registration logs the account in: cookie set and token resolvable.
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	claims, err := sessions.Parse(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	handler, svc, _ := newUserHandlerFixture()
	_, err := svc.Register(context.Background(), "x@x.com", "secret", "X", "")
	require.NoError(t, err)

	body := `{"email":"x@x.com","password":"other","name":"X2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Nil(t, sessionCookie(rec))
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	handler, _, _ := newUserHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Login(t *testing.T) {
	handler, svc, _ := newUserHandlerFixture()
	_, err := svc.Register(context.Background(), "alice@example.com", "pw1", "Alice", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"pw1"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, sessionCookie(rec))
}

func TestUserHandler_Login_UnknownEmail(t *testing.T) {
	handler, _, _ := newUserHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"pw"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	// Unknown email is distinct from a wrong password.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_Login_WrongPassword(t *testing.T) {
	handler, svc, _ := newUserHandlerFixture()
	_, err := svc.Register(context.Background(), "alice@example.com", "pw1", "Alice", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"nope"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookie(rec))
}

func TestUserHandler_Logout(t *testing.T) {
	handler, _, _ := newUserHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestUserHandler_GetMe(t *testing.T) {
	handler, svc, _ := newUserHandlerFixture()
	alice, err := svc.Register(context.Background(), "alice@example.com", "pw1", "Alice", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = req.WithContext(auth.WithUser(req.Context(), &alice))
	rec := httptest.NewRecorder()
	handler.GetMe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, alice.ID, got.ID)
}
