package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/merlinjoyv/GlowUpAI/internal/advice"
	"github.com/merlinjoyv/GlowUpAI/internal/config"
	"github.com/merlinjoyv/GlowUpAI/internal/database"
	"github.com/merlinjoyv/GlowUpAI/internal/handlers"
	"github.com/merlinjoyv/GlowUpAI/internal/middleware"
	"github.com/merlinjoyv/GlowUpAI/internal/models"
	"github.com/merlinjoyv/GlowUpAI/internal/repository"
	"github.com/merlinjoyv/GlowUpAI/internal/router"
	"github.com/merlinjoyv/GlowUpAI/internal/services"
	"github.com/merlinjoyv/GlowUpAI/internal/websocket"
	"github.com/merlinjoyv/GlowUpAI/internal/worker"
)

type submissionStore interface {
	Save(ctx context.Context, s *models.Submission) error
	List(ctx context.Context, limit int) ([]models.Submission, error)
}

func main() {
	log.Println("🚀 Starting AI Fashion Specialist Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Optional Redis ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer client.Close()
		redisClient = client
		log.Println("✓ Redis connected")
	}

	// ──── Step 3: Submission Storage ────
	var store submissionStore
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()
		log.Println("✓ PostgreSQL connected")

		if err := database.RunMigrations(pool, database.Migrations()); err != nil {
			log.Fatalf("✗ Database migration failed: %v", err)
		}
		log.Println("✓ Database migrations applied")
		store = repository.NewSubmissionRepo(pool)
	} else {
		store = repository.NewCSVStore(cfg.SubmissionsCSV)
		log.Printf("✓ Submissions will be written to %s", cfg.SubmissionsCSV)
	}

	// ──── Step 4: Generative Backend ────
	backend, closeBackend, err := services.NewBackend(context.Background(), cfg)
	if err != nil {
		log.Printf("❌ Failed to initialize %s backend: %v", cfg.Provider(), err)
		backend = nil
	}
	defer closeBackend()

	provider := config.ProviderNone
	if backend != nil {
		provider = cfg.Provider()
		log.Printf("✓ %s backend initialized", provider)
	}

	engine := advice.NewEngine(advice.EngineConfig{
		BackendAvailable: backend != nil,
		Backend:          backend,
		Timeout:          cfg.AITimeout,
	})

	// ──── Step 5: Submission Workers ────
	var queue *worker.Queue
	var workerPool *worker.Pool
	if redisClient != nil {
		queue = worker.NewQueue(redisClient)
		workerPool = worker.NewPool(redisClient, store, cfg.SubmissionWorkers)
		workerPool.Start()
		log.Printf("✓ Worker pool started (%d goroutines)", cfg.SubmissionWorkers)
	}

	// ──── Step 6: Handlers ────
	chatHandler := handlers.NewChatHandler(engine)
	healthHandler := handlers.NewHealthHandler(engine.BackendAvailable(), provider)
	var submissionHandler *handlers.SubmissionHandler
	if queue != nil {
		submissionHandler = handlers.NewSubmissionHandler(store, queue)
	} else {
		submissionHandler = handlers.NewSubmissionHandler(store, nil)
	}
	wsHub := websocket.NewHub(engine)

	// ──── Step 7: Middleware ────
	var chatLimiter func(http.Handler) http.Handler
	stopLimiter := func() {}
	if redisClient != nil {
		chatLimiter = middleware.NewRedisRateLimiter(redisClient, "ratelimit:chat", cfg.ChatRateLimitPerMin, time.Minute).Middleware
	} else {
		limiter := middleware.NewRateLimiter(cfg.ChatRateLimitPerMin, time.Minute)
		chatLimiter = limiter.Middleware
		stopLimiter = limiter.Stop
	}

	var adminAuth *middleware.AdminAuth
	if cfg.AdminJWTSecret != "" {
		adminAuth = middleware.NewAdminAuth(cfg.AdminJWTSecret)
		log.Println("✓ Admin routes enabled")
	}

	// ──── Step 8: Start HTTP Server ────
	r := router.New(
		chatHandler,
		healthHandler,
		submissionHandler,
		wsHub,
		chatLimiter,
		adminAuth,
		cfg.FrontendURL,
	)

	// WriteTimeout leaves room for a full backend call. cfg.AITimeout is
	// always positive after Load.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		wsHub.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)

		if workerPool != nil {
			workerPool.Stop()
		}
		stopLimiter()
	}()

	if engine.BackendAvailable() {
		log.Println("✅ AI-Powered mode")
	} else {
		log.Println("⚠️  Fallback mode - template responses only")
	}
	log.Printf("✓ Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-stopped
}
