// Package server exposes the agent over HTTP with a single chat endpoint.
package server

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// Agent handles a single chat message end to end.
type Agent interface {
	HandleMessage(ctx context.Context, text string) contractx.Result
}

type Server struct {
	app   *fiber.App
	agent Agent
	cfg   Config
}

type chatRequest struct {
	Message string `json:"message"`
}

func New(agent Agent, cfg Config) *Server {
	app := fiber.New(fiber.Config{
		AppName: "evo-commerce-agent",
	})

	app.Use(recover.New())

	s := &Server{app: app, agent: agent, cfg: cfg}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	s.app.Post("/api/chat", s.handleChat)
}

func (s *Server) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	result := s.agent.HandleMessage(c.UserContext(), req.Message)
	return c.JSON(result)
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen() error {
	return s.app.Listen(":" + s.cfg.Port)
}
