package handlers

import (
	"context"
	"time"

	"github.com/evmarsh/blogforge-be/internal/auth"
	"github.com/evmarsh/blogforge-be/internal/models"
)

// fakeUserService is an in-memory account directory for handler tests.
type fakeUserService struct {
	users     map[string]models.User
	passwords map[string]string
	nextID    int64
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{
		users:     map[string]models.User{},
		passwords: map[string]string{},
	}
}

func (f *fakeUserService) Register(_ context.Context, email, password, name, profilePic string) (models.User, error) {
	if _, ok := f.users[email]; ok {
		return models.User{}, auth.ErrDuplicateEmail
	}
	f.nextID++
	user := models.User{ID: f.nextID, Email: email, Name: name, ProfilePic: profilePic, CreatedAt: time.Now()}
	f.users[email] = user
	f.passwords[email] = password
	return user, nil
}

func (f *fakeUserService) Authenticate(_ context.Context, email, password string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, auth.ErrNoSuchAccount
	}
	if f.passwords[email] != password {
		return models.User{}, auth.ErrBadCredential
	}
	return user, nil
}

func (f *fakeUserService) GetUserByID(_ context.Context, id int64) (models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, auth.ErrNoSuchAccount
}

// fakePostService counts writes so tests can prove a handler never reached
// the service.
type fakePostService struct {
	creates int
	updates int
	deletes int
}

func (f *fakePostService) GetAllPosts(context.Context) ([]models.Post, error) {
	return []models.Post{}, nil
}

func (f *fakePostService) GetPostByID(_ context.Context, id int64) (models.Post, error) {
	return models.Post{ID: id}, nil
}

func (f *fakePostService) CreatePost(_ context.Context, title, subtitle, body, imgURL string, authorID int64) (models.Post, error) {
	f.creates++
	return models.Post{ID: 1, Title: title, Subtitle: subtitle, Body: body, ImgURL: imgURL, AuthorID: authorID}, nil
}

func (f *fakePostService) UpdatePost(_ context.Context, id int64, title, subtitle, body, imgURL string, authorID int64) (models.Post, error) {
	f.updates++
	return models.Post{ID: id, Title: title, Subtitle: subtitle, Body: body, ImgURL: imgURL, AuthorID: authorID}, nil
}

func (f *fakePostService) DeletePost(context.Context, int64) error {
	f.deletes++
	return nil
}

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendContactMessage(name, email, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}
