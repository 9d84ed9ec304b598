// Package server contains the HTTP handlers for the debate forum API.
package server

import (
	"sync"
	"time"

	"debateapp/internal/cache"
	"debateapp/internal/config"
	"debateapp/internal/middleware"
	"debateapp/internal/repository"
	"debateapp/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// fiberprometheus registers its collectors in the default prometheus
// registry, so it must be created exactly once per process no matter how
// many Server instances tests construct.
var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

func metricsMiddleware() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.New("debateapp")
	})
	return promMiddleware
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo   repository.UserRepository
	topicRepo  repository.TopicRepository
	debateRepo repository.DebateRepository

	debateCache *cache.Debates

	userService   *service.UserService
	topicService  *service.TopicService
	debateService *service.DebateService
	searchService *service.SearchService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	userRepo, err := repository.NewUserRepository(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	topicRepo, err := repository.NewTopicRepository(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	debateRepo, err := repository.NewDebateRepository(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, userRepo, topicRepo, debateRepo, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the stores and
// Redis itself.
func NewServerWithDeps(
	cfg *config.Config,
	userRepo repository.UserRepository,
	topicRepo repository.TopicRepository,
	debateRepo repository.DebateRepository,
	redisClient *redis.Client,
) *Server {
	debateCache := cache.NewDebates(redisClient)

	server := &Server{
		config:         cfg,
		redis:          redisClient,
		promMiddleware: metricsMiddleware(),
		userRepo:       userRepo,
		topicRepo:      topicRepo,
		debateRepo:     debateRepo,
		debateCache:    debateCache,
	}

	server.userService = service.NewUserService(userRepo)
	server.topicService = service.NewTopicService(topicRepo, debateRepo, userRepo, debateCache)
	server.debateService = service.NewDebateService(debateRepo, userRepo, debateCache)
	server.searchService = service.NewSearchService(topicRepo, debateRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for log correlation
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	app.Use(s.promMiddleware.Middleware)

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit, so browser clients
	// still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Global rate limiting (300 requests per minute per IP; the comment
	// poller alone accounts for 12/min per open debate view)
	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Metrics endpoint for Prometheus
	s.promMiddleware.RegisterAt(app, "/metrics")

	api := app.Group("/api")

	api.Get("/health", s.Health)

	// User routes
	users := api.Group("/users")
	users.Post("/anonymous", s.CreateAnonymousUser)
	users.Get("/", s.GetUsers)
	users.Get("/:id", s.GetUser)

	// Topic routes
	topics := api.Group("/topics")
	topics.Get("/", s.GetTopics)
	topics.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_topic"), s.CreateTopic)
	topics.Post("/:id/vote", s.VoteTopic)

	// Debate routes
	debates := api.Group("/debates")
	debates.Get("/", s.GetDebates)
	debates.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_debate"), s.CreateDebate)
	debates.Post("/:id/join", s.JoinDebate)
	debates.Get("/:id/comments", s.GetComments)
	debates.Post("/:id/comments", middleware.RateLimit(
		s.redis, 30, time.Minute, "create_comment"), s.CreateComment)

	// Search
	api.Get("/search", middleware.RateLimit(
		s.redis, 30, time.Minute, "search"), s.Search)
}

// Health reports service liveness.
func (s *Server) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
