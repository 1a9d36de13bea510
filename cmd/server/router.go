package main

import (
	"net/http"

	"github.com/Anastasia-front/contacts-api/internal/api"
	apiMiddleware "github.com/Anastasia-front/contacts-api/internal/api/middleware"
	"github.com/Anastasia-front/contacts-api/internal/api/schema"
	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Each route lists its stages in order: auth, id check, body validation, controller.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	if app.config.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(shared.NotFound)
	r.MethodNotAllowed(shared.NotFound)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.mailer,
		api.AuthOptions{
			BaseURL:             app.config.Server.BaseURL,
			RequireVerification: app.config.Auth.RequireVerification,
		},
		app.logger,
	)
	userHandler := api.NewUserHandler(app.userStore, app.avatars, app.config.Storage.MaxAvatarBytes, app.logger)
	contactHandler := api.NewContactHandler(app.contactStore, app.logger)

	authenticate := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore).Authenticate
	validID := apiMiddleware.ValidID("id")
	rateLimit := apiMiddleware.RateLimit(app.config.Auth.RateLimitRPS, app.config.Auth.RateLimitBurst)
	validate := apiMiddleware.ValidateBody
	enumerateContactFields := schema.EnumerateFields(schema.ContactFields...)

	r.Route("/api/users", func(r chi.Router) {
		// Public endpoints
		r.Group(func(r chi.Router) {
			r.Use(rateLimit)
			r.With(validate(schema.Register, schema.Raw())).Post("/register", shared.Wrap(authHandler.Register))
			r.With(validate(schema.Login, schema.Raw())).Post("/login", shared.Wrap(authHandler.Login))
			r.Get("/verify/{verificationToken}", shared.Wrap(authHandler.VerifyEmail))
			r.With(validate(schema.Email, schema.Fixed(api.MsgMissingEmail))).
				Post("/verify", shared.Wrap(authHandler.ResendVerify))
		})

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/logout", shared.Wrap(authHandler.Logout))
			r.Get("/current", shared.Wrap(authHandler.Current))

			updateSubscription := shared.Wrap(userHandler.UpdateSubscription)
			r.With(validate(schema.Subscription, schema.Raw())).Patch("/", updateSubscription)
			r.With(validate(schema.Subscription, schema.Raw())).Patch("/subscription", updateSubscription)

			r.Patch("/avatar", shared.Wrap(userHandler.UpdateAvatar))
		})
	})

	r.Route("/api/contacts", func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/", shared.Wrap(contactHandler.ListContacts))
		r.With(validate(schema.Contact, enumerateContactFields)).Post("/", shared.Wrap(contactHandler.AddContact))

		r.Route("/{id}", func(r chi.Router) {
			r.Use(validID)

			r.Get("/", shared.Wrap(contactHandler.GetContact))
			r.With(validate(schema.Contact, enumerateContactFields)).Put("/", shared.Wrap(contactHandler.UpdateContact))
			r.With(validate(schema.Favorite, schema.Fixed(api.MsgMissingFavorite))).
				Patch("/favorite", shared.Wrap(contactHandler.UpdateFavorite))
			r.Delete("/", shared.Wrap(contactHandler.RemoveContact))
		})
	})

	r.Get("/api-docs", api.Docs)

	if app.config.Storage.Driver == "local" {
		avatarFiles := http.StripPrefix("/avatars/", http.FileServer(http.Dir(app.config.Storage.LocalDir)))
		r.Get("/avatars/*", avatarFiles.ServeHTTP)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
