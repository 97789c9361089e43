package config

import (
	"fmt"
	"os"

	"RotinaGolang/database/postgres"
	agendaHandler "RotinaGolang/internal/api/agenda/handler"
	agendaRepository "RotinaGolang/internal/api/agenda/repository"
	agendaService "RotinaGolang/internal/api/agenda/service"
	assistantHandler "RotinaGolang/internal/api/assistant/handler"
	assistantService "RotinaGolang/internal/api/assistant/service"
	"RotinaGolang/internal/middleware"
	"RotinaGolang/internal/scheduler"
	"RotinaGolang/pkg/audio"
	"RotinaGolang/pkg/gemini"
	"RotinaGolang/pkg/nlp"
	"RotinaGolang/pkg/redis"
	"RotinaGolang/pkg/s3"
	"RotinaGolang/pkg/utils"
	"RotinaGolang/pkg/whatsapp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	redisServer    redis.IRedis
	whatsappClient whatsapp.IWhatsappSender
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	parser         nlp.IParser
	transcriber    audio.ITranscriber
	dispatcher     *scheduler.Dispatcher
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithParser() ServerOption {
	return func(s *Server) error {
		s.parser = nlp.New()
		return nil
	}
}

func WithTranscriber() ServerOption {
	return func(s *Server) error {
		s.transcriber = audio.NewTranscriptionService(os.Getenv("OPENAI_API_KEY"))
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Agenda Domain
	agendaRepo := agendaRepository.New(s.db, s.log)
	agendaServices := agendaService.NewAgendaService(s.log, agendaRepo, s.parser, s.redisServer, s.whatsappClient, s.utils)
	agendaHandlers := agendaHandler.New(s.log, s.validator, s.middleware, agendaServices)

	// Assistant Domain
	assistantServices := assistantService.NewAssistantService(s.log, agendaServices, s.parser, s.geminiClient, s.s3Client, s.transcriber, s.utils)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.dispatcher = scheduler.New(s.log, agendaRepo, s.whatsappClient)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, agendaHandlers, assistantHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.Start(); err != nil {
			return fmt.Errorf("failed to start reminder dispatcher: %w", err)
		}
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		s.Shutdown()
		return err
	}

	return nil
}

func (s *Server) Shutdown() {
	if s.dispatcher != nil {
		s.dispatcher.Stop()
	}
	if s.whatsappClient != nil {
		s.whatsappClient.Disconnect()
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
