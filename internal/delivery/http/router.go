package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"officeweb/internal/delivery/http/controllers"
	"officeweb/internal/delivery/http/middleware"
	"officeweb/internal/domain"
)

// RouterOptions carries what the middleware chain needs beyond the controllers.
type RouterOptions struct {
	Logger             *slog.Logger
	Auth               domain.AuthService
	SecureCookies      bool
	CORSAllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and wraps
// it in the request logging, language and session middleware.
func NewRouter(public *controllers.PublicController, admin *controllers.AdminController, api *controllers.APIController, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	// Public pages
	mux.HandleFunc("GET /{$}", public.Home)
	mux.HandleFunc("GET /about", public.About)
	mux.HandleFunc("GET /posts", public.Posts)
	mux.HandleFunc("GET /posts/{id}", public.PostDetail)
	mux.HandleFunc("GET /services", public.Services)
	mux.HandleFunc("GET /contact", public.Contact)
	mux.HandleFunc("POST /contact", public.SubmitContact)
	mux.HandleFunc("GET /contact/{id}", public.ContactDetail)
	mux.HandleFunc("POST /contact/{id}/verify", public.VerifyContact)

	// Admin
	mux.HandleFunc("GET /admin/login", admin.LoginForm)
	mux.HandleFunc("POST /admin/login", admin.Login)
	mux.HandleFunc("POST /admin/logout", admin.Logout)

	auth := middleware.RequireSession()
	mux.HandleFunc("GET /admin", auth(admin.Dashboard))
	mux.HandleFunc("GET /admin/posts", auth(admin.Posts))
	mux.HandleFunc("GET /admin/posts/new", auth(admin.NewPost))
	mux.HandleFunc("POST /admin/posts", auth(admin.CreatePost))
	mux.HandleFunc("GET /admin/posts/{id}/edit", auth(admin.EditPost))
	mux.HandleFunc("POST /admin/posts/{id}", auth(admin.UpdatePost))
	mux.HandleFunc("POST /admin/posts/{id}/delete", auth(admin.DeletePost))
	mux.HandleFunc("GET /admin/services", auth(admin.Services))
	mux.HandleFunc("GET /admin/services/new", auth(admin.NewService))
	mux.HandleFunc("POST /admin/services", auth(admin.CreateService))
	mux.HandleFunc("GET /admin/services/{id}/edit", auth(admin.EditService))
	mux.HandleFunc("POST /admin/services/{id}", auth(admin.UpdateService))
	mux.HandleFunc("POST /admin/services/{id}/delete", auth(admin.DeleteService))
	mux.HandleFunc("GET /admin/contacts", auth(admin.Contacts))
	mux.HandleFunc("GET /admin/contacts/{id}", auth(admin.Contact))
	mux.HandleFunc("POST /admin/contacts/{id}/reply", auth(admin.ReplyContact))
	mux.HandleFunc("POST /admin/contacts/{id}/delete", auth(admin.DeleteContact))

	// API Routes
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/posts", api.ListPosts)
	apiMux.HandleFunc("GET /api/services", api.ListServices)
	apiMux.HandleFunc("GET /api/contacts", api.ListInquiries)
	mux.Handle("/api/", middleware.CORS(opts.CORSAllowedOrigins, apiMux))
	mux.HandleFunc("GET /healthz", api.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", public.NotFound)

	var h http.Handler = mux
	h = middleware.LoadSession(opts.Auth, opts.SecureCookies, opts.Logger)(h)
	h = middleware.Locale(h)
	h = middleware.LoggingMiddleware(opts.Logger, h)
	return h
}
