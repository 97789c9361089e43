package agendaHandler

import (
	agendaService "RotinaGolang/internal/api/agenda/service"
	"RotinaGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AgendaHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	agendaService agendaService.IAgendaService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	agendaService agendaService.IAgendaService,
) *AgendaHandler {
	return &AgendaHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		agendaService: agendaService,
	}
}

func (h *AgendaHandler) Start(srv fiber.Router) {
	agenda := srv.Group("/agenda")

	agenda.Post("/commands", h.middleware.NewTokenMiddleware, h.ProcessCommand)
	agenda.Post("/items", h.middleware.NewTokenMiddleware, h.CreateItem)
	agenda.Get("/items", h.middleware.NewTokenMiddleware, h.GetItemsByUserID)
	agenda.Get("/view", h.middleware.NewTokenMiddleware, h.GetView)
	agenda.Get("/items/:id", h.middleware.NewTokenMiddleware, h.GetItemByID)
	agenda.Delete("/items/:id", h.middleware.NewTokenMiddleware, h.DeleteItem)
}
