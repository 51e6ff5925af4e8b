package server

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/storage/redis/v3"

	"crackbench/internal/platform/config"
	"crackbench/internal/platform/logx"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App    *fiber.App
	Cfg    config.ServerConfig
	logger logx.Logger
}

// New creates a new server with middleware configured.
func New(cfg config.ServerConfig, log logx.Logger) *Server {
	if log == nil {
		log = logx.New()
	}
	log = log.With("component", "server")

	app := fiber.New(fiber.Config{
		AppName: "crackbench",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"error":  message,
			})
		},
	})

	// Global middleware
	app.Use(recoverer.New())
	app.Use(logger.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))

	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiterConfig(cfg, log)))
	}

	return &Server{App: app, Cfg: cfg, logger: log}
}

// limiterConfig limits requests per IP. Counters live in Redis when a URL is
// configured so several instances share them.
func limiterConfig(cfg config.ServerConfig, log logx.Logger) limiter.Config {
	lc := limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: cfg.RateWindow,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "Rate limit exceeded. Please try again later.",
			})
		},
		Next: func(c fiber.Ctx) bool {
			// health and metrics are scraped by infra
			p := c.Path()
			return p == "/health" || p == "/metrics"
		},
	}
	if cfg.RedisURL != "" {
		if store, err := newRedisStorage(cfg.RedisURL); err != nil {
			log.Warn("redis unavailable, rate limiter falls back to memory", "error", err.Error())
		} else {
			lc.Storage = store
			log.Info("rate limiter using redis storage")
		}
	}
	return lc
}

// newRedisStorage wraps redis.New, which panics when it cannot connect.
func newRedisStorage(url string) (store *redis.Storage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmtRecover(r)
		}
	}()
	return redis.New(redis.Config{URL: url}), nil
}

// Start starts listening on the configured address.
func (s *Server) Start() error {
	s.logger.Info("listening", "addr", s.Cfg.Addr)
	return s.App.Listen(s.Cfg.Addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

func fmtRecover(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
