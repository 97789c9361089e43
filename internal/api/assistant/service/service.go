package assistantService

import (
	"mime/multipart"

	agendaService "RotinaGolang/internal/api/agenda/service"
	"RotinaGolang/internal/api/assistant"
	"RotinaGolang/pkg/audio"
	"RotinaGolang/pkg/gemini"
	"RotinaGolang/pkg/nlp"
	"RotinaGolang/pkg/s3"
	"RotinaGolang/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAssistantService interface {
	ProcessChat(ctx context.Context, req assistant.ChatRequest) (assistant.ChatResponse, error)
	ProcessVoice(ctx context.Context, userID string, audioFile *multipart.FileHeader, tzOffsetMinutes *int) (assistant.ChatResponse, error)
}

type assistantService struct {
	log           *logrus.Logger
	agendaService agendaService.IAgendaService
	parser        nlp.IParser
	gemini        gemini.IGemini
	s3            s3.ItfS3
	transcriber   audio.ITranscriber
	utils         utils.IUtils
}

func NewAssistantService(
	log *logrus.Logger,
	as agendaService.IAgendaService,
	parser nlp.IParser,
	gemini gemini.IGemini,
	s3 s3.ItfS3,
	transcriber audio.ITranscriber,
	utils utils.IUtils,
) IAssistantService {
	return &assistantService{
		log:           log,
		agendaService: as,
		parser:        parser,
		gemini:        gemini,
		s3:            s3,
		transcriber:   transcriber,
		utils:         utils,
	}
}
