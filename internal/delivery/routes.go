package delivery

import (
	"github.com/Vovarama1992/vidbrief/internal/ports"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	auth ports.AuthService,
	hAuth *AuthHandler,
	hSummarize *SummarizeHandler,
	hProfile *ProfileHandler,
	hPages *PageHandler,
) {
	// pages
	r.Get("/", hPages.Index)
	r.Get("/auth", hPages.Auth)
	r.Get("/profile", hPages.Profile)

	// public api
	r.Post("/api/register", hAuth.Register)
	r.Post("/api/login", hAuth.Login)

	// api за токеном
	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(auth))
		pr.Post("/api/summarize", hSummarize.Summarize)
		pr.Get("/api/profile", hProfile.GetProfile)
		pr.Get("/api/summaries", hProfile.ListSummaries)
	})
}
