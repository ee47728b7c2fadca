package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/evmarsh/blogforge-be/internal/api/handlers"
	"github.com/evmarsh/blogforge-be/internal/auth"
	"github.com/evmarsh/blogforge-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	sessions *auth.Sessions,
	userService services.UserServiceProvider,
	postService services.PostServiceProvider,
	commentService services.CommentServiceProvider,
	mailer handlers.ContactSender,
	allowedOrigin string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Every request resolves its session once; route guards do the enforcing.
	r.Use(sessions.CurrentUser())

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, sessions)
	postHandler := handlers.NewPostHandler(postService, commentService)
	commentHandler := handlers.NewCommentHandler(commentService)
	contactHandler := handlers.NewContactHandler(mailer)

	loggedIn := auth.RequireAuthorized(auth.AnyAccount)
	adminOnly := auth.RequireAuthorized(auth.IsPrimaryAccount)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Post("/logout", userHandler.Logout)
			r.With(loggedIn).Get("/me", userHandler.GetMe)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.GetAll)
			r.With(adminOnly).Post("/", postHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", postHandler.Get)
				r.With(adminOnly).Put("/", postHandler.Update)
				r.With(adminOnly).Delete("/", postHandler.Delete)
				r.With(loggedIn).Post("/comments", commentHandler.Create)
			})
		})

		r.Post("/contact", contactHandler.Send)
	})

	return r
}
