package assistantHandler

import (
	"errors"
	"strconv"
	"time"

	"RotinaGolang/internal/api/assistant"
	"RotinaGolang/internal/entity"
	contextPkg "RotinaGolang/pkg/context"
	"RotinaGolang/pkg/handlerUtil"
	jwtPkg "RotinaGolang/pkg/jwt"
	"RotinaGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

func (h *AssistantHandler) ProcessChat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing assistant chat request")

	var req assistant.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.assistantService.ProcessChat(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_chat")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *AssistantHandler) ProcessVoice(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing assistant voice request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	audioFile, err := ctx.FormFile("audio")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("audio file is required"), ctx.Path())
	}

	var tzOffsetMinutes *int
	if raw := ctx.FormValue("tz_offset_minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errHandler.HandleValidationError(ctx, requestID,
				errors.New("invalid tz_offset_minutes parameter"), ctx.Path())
		}
		tzOffsetMinutes = &parsed
	}

	response, err := h.assistantService.ProcessVoice(c, userData.ID, audioFile, tzOffsetMinutes)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_voice")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

type wsChatMessage struct {
	Message         string `json:"message"`
	TZOffsetMinutes *int   `json:"tz_offset_minutes"`
}

func (h *AssistantHandler) handleChatWebSocket(conn *websocket.Conn) {
	h.log.Info("Assistant WebSocket client connected")
	defer h.log.Info("Assistant WebSocket client disconnected")

	userData, ok := conn.Locals("user").(entity.UserLoginData)
	if !ok {
		_ = conn.WriteJSON(map[string]string{"error": "unauthorized"})
		return
	}

	maxReadTimeout := 300 * time.Second

	for {
		if err := conn.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		var msg wsChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Assistant WebSocket error: %v", err)
			} else {
				h.log.Info("Assistant WebSocket connection closed")
			}
			break
		}

		c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		response, err := h.assistantService.ProcessChat(c, assistant.ChatRequest{
			UserID:          userData.ID,
			Message:         msg.Message,
			TZOffsetMinutes: msg.TZOffsetMinutes,
		})
		cancel()

		if err != nil {
			if writeErr := conn.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := conn.WriteJSON(response); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := conn.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
