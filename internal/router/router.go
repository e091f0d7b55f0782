package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/merlinjoyv/GlowUpAI/internal/handlers"
	"github.com/merlinjoyv/GlowUpAI/internal/middleware"
	"github.com/merlinjoyv/GlowUpAI/internal/websocket"
)

// New wires every route. adminAuth may be nil, in which case the admin
// routes are not mounted.
func New(
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
	submissionHandler *handlers.SubmissionHandler,
	wsHub *websocket.Hub,
	chatLimiter func(http.Handler) http.Handler,
	adminAuth *middleware.AdminAuth,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	r.Get("/", healthHandler.StatusPage)
	r.Post("/submit-user", submissionHandler.SubmitUser)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		// ──── Chat Routes ────
		r.Group(func(r chi.Router) {
			r.Use(chatLimiter)
			r.Post("/fashion-chat", chatHandler.FashionChat)
			r.Get("/ws", wsHub.HandleWebSocket)
		})

		// ──── Admin Routes ────
		if adminAuth != nil {
			r.Route("/v1/submissions", func(r chi.Router) {
				r.Use(adminAuth.Middleware)
				r.Get("/", submissionHandler.List)
			})
		}
	})

	return r
}
