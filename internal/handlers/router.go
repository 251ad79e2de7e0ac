package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gestorai/gestorai/internal/auth"
	"github.com/gestorai/gestorai/internal/middleware"
	"github.com/gestorai/gestorai/internal/ratelimit"
)

// authLimiterName namespaces the login and register buckets in the limiter.
const authLimiterName = "auth"

// Router groups everything NewRouter mounts.
type Router struct {
	Auth     *AuthHandler
	Chat     *ChatHandler
	Tasks    *TaskHandler
	Webhooks *WebhookHandler
	Logs     *LogHandler
	Health   *HealthHandler

	Tokens      *auth.TokenManager
	Limiter     *ratelimit.MemoryRateLimiter
	CORSOrigins []string
	Logger      Logger
}

// NewRouter builds the HTTP routes. Public routes sit at the top level of /api;
// everything else goes through the bearer guard.
func NewRouter(rt Router) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RecoverPanic(rt.Logger))
	r.Use(middleware.RequestLogger(rt.Logger))
	r.Use(middleware.CORS(rt.CORSOrigins))

	r.HandleFunc("/health", rt.Health.Check).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	// Preflight requests are answered by the CORS middleware, but mux only runs
	// middleware on matched routes.
	api.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.Use(middleware.RateLimitMiddleware(rt.Limiter, authLimiterName, rt.Logger))
	authRoutes.Use(middleware.AuthSuccessMiddleware(rt.Limiter, authLimiterName))
	authRoutes.HandleFunc("/register", rt.Auth.Register).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", rt.Auth.Login).Methods(http.MethodPost)

	api.HandleFunc("/telegram-webhook", rt.Webhooks.Telegram).Methods(http.MethodPost)
	api.HandleFunc("/whatsapp-webhook", rt.Webhooks.WhatsApp).Methods(http.MethodPost)
	api.HandleFunc("/log", rt.Logs.LogFrontendEvent).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.NewAuthGuard(rt.Tokens, rt.Logger))
	protected.HandleFunc("/chat", rt.Chat.SendMessage).Methods(http.MethodPost)
	protected.HandleFunc("/chat/{conversationId}", rt.Chat.GetConversation).Methods(http.MethodGet)
	protected.HandleFunc("/conversations", rt.Chat.ListConversations).Methods(http.MethodGet)
	protected.HandleFunc("/conversations", rt.Chat.CreateConversation).Methods(http.MethodPost)
	protected.HandleFunc("/tasks", rt.Tasks.ListTasks).Methods(http.MethodGet)
	protected.HandleFunc("/tasks", rt.Tasks.CreateTask).Methods(http.MethodPost)
	protected.HandleFunc("/import-tasks", rt.Tasks.ImportTasks).Methods(http.MethodPost)
	protected.HandleFunc("/export-tasks", rt.Tasks.ExportTasks).Methods(http.MethodGet)

	return r
}
