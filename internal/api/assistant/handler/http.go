package assistantHandler

import (
	assistantService "RotinaGolang/internal/api/assistant/service"
	"RotinaGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	assistantService assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: assistantService,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	assistant := srv.Group("/assistant")

	assistant.Post("/chat", h.middleware.NewTokenMiddleware, h.ProcessChat)
	assistant.Post("/voice", h.middleware.NewTokenMiddleware, h.ProcessVoice)

	assistant.Use("/ws", h.middleware.NewTokenMiddleware, wsMiddleware)
	assistant.Get("/ws", websocket.New(h.handleChatWebSocket))
}
