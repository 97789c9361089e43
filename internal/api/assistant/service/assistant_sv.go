package assistantService

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"RotinaGolang/internal/api/agenda"
	"RotinaGolang/internal/api/assistant"
	contextPkg "RotinaGolang/pkg/context"
	"RotinaGolang/pkg/nlp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const fallbackPrompt = "Você é um assistente pessoal de agenda. Responda em português " +
	"brasileiro, de forma curta e simpática. Se a mensagem pedir para criar um " +
	"compromisso ou rotina, sugira ao usuário reformular como um comando, por " +
	"exemplo 'lembra de pagar a conta amanhã às 14h'. Mensagem do usuário: %s"

func (s *assistantService) ProcessChat(ctx context.Context, req assistant.ChatRequest) (assistant.ChatResponse, error) {
	return s.process(ctx, req.UserID, req.Message, string(nlp.OriginChat), "", req.TZOffsetMinutes)
}

func (s *assistantService) ProcessVoice(ctx context.Context, userID string, audioFile *multipart.FileHeader, tzOffsetMinutes *int) (assistant.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateAudioFile(audioFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid audio file")
		return assistant.ChatResponse{}, assistant.ErrInvalidAudioFile
	}

	audioLink, err := s.s3.UploadFile(audioFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload voice note")
		return assistant.ChatResponse{}, err
	}

	localPath, err := s.saveToTemp(audioFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to buffer voice note")
		return assistant.ChatResponse{}, err
	}
	defer os.Remove(localPath)

	transcript, err := s.transcriber.TranscribeAudio(ctx, localPath)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to transcribe voice note")
		return assistant.ChatResponse{}, assistant.ErrTranscriptionFailed
	}

	response, err := s.process(ctx, userID, transcript, string(nlp.OriginVoice), audioLink, tzOffsetMinutes)
	if err != nil {
		return assistant.ChatResponse{}, err
	}

	response.Transcript = transcript
	response.AudioLink = audioLink

	return response, nil
}

// process routes one utterance: query and creation commands go through the
// agenda pipeline, anything else falls back to Gemini small talk.
func (s *assistantService) process(ctx context.Context, userID string, message string, origin string, audioLink string, tzOffsetMinutes *int) (assistant.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(message) == "" {
		return assistant.ChatResponse{}, assistant.ErrEmptyMessage
	}

	if s.parser.IsQueryCommand(message) || s.parser.IsCreationCommand(message) {
		commandResponse, err := s.agendaService.ProcessCommand(ctx, agenda.CommandRequest{
			UserID:          userID,
			Text:            message,
			Origin:          origin,
			TZOffsetMinutes: tzOffsetMinutes,
			AudioLink:       audioLink,
		})
		if err != nil {
			return assistant.ChatResponse{}, err
		}

		reply := commandResponse.Confirmation
		if commandResponse.Query {
			reply = formatViewReply(commandResponse.Period, commandResponse.Entries)
		}

		return assistant.ChatResponse{
			Reply:   reply,
			Command: &commandResponse,
		}, nil
	}

	reply, err := s.gemini.GenerateText(ctx, fmt.Sprintf(fallbackPrompt, message))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Gemini fallback failed")
		return assistant.ChatResponse{}, assistant.ErrAssistantUnavailable
	}

	return assistant.ChatResponse{Reply: reply}, nil
}

var periodDisplay = map[string]string{
	"today":    "hoje",
	"tomorrow": "amanhã",
	"week":     "esta semana",
}

func formatViewReply(period string, entries []agenda.ViewEntry) string {
	label := periodDisplay[period]
	if label == "" {
		label = period
	}

	if len(entries) == 0 {
		return fmt.Sprintf("Você não tem nada agendado para %s.", label)
	}

	var b strings.Builder
	if len(entries) == 1 {
		fmt.Fprintf(&b, "Você tem 1 compromisso para %s:\n", label)
	} else {
		fmt.Fprintf(&b, "Você tem %d compromissos para %s:\n", len(entries), label)
	}

	for _, entry := range entries {
		date := entry.Date
		if d, err := time.Parse("2006-01-02", entry.Date); err == nil {
			date = d.Format("02/01")
		}
		fmt.Fprintf(&b, "- %s das %s às %s: %s\n", date, entry.StartTime, entry.EndTime, entry.Title)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (s *assistantService) saveToTemp(audioFile *multipart.FileHeader) (string, error) {
	src, err := audioFile.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(audioFile.Filename)
	tmpFile, err := os.CreateTemp("", "voice-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, src); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}

	return tmpFile.Name(), nil
}
