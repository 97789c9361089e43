package agendaService

import (
	"RotinaGolang/internal/api/agenda"
	agendaRepository "RotinaGolang/internal/api/agenda/repository"
	"RotinaGolang/internal/entity"
	"RotinaGolang/pkg/nlp"
	"RotinaGolang/pkg/redis"
	"RotinaGolang/pkg/utils"
	"RotinaGolang/pkg/whatsapp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAgendaService interface {
	ProcessCommand(ctx context.Context, req agenda.CommandRequest) (agenda.CommandResponse, error)
	CreateItem(ctx context.Context, req agenda.CreateItemRequest) (entity.AgendaItem, error)
	GetItemByID(ctx context.Context, id string, userID string) (entity.AgendaItem, error)
	GetItemsByUserID(ctx context.Context, userID string) ([]entity.AgendaItem, error)
	GetView(ctx context.Context, userID string, period string, tzOffsetMinutes int) (agenda.ViewResponse, error)
	DeleteItem(ctx context.Context, id string, userID string) error
}

type agendaService struct {
	log              *logrus.Logger
	agendaRepository agendaRepository.Repository
	parser           nlp.IParser
	redis            redis.IRedis
	whatsapp         whatsapp.IWhatsappSender
	utils            utils.IUtils
}

func NewAgendaService(
	log *logrus.Logger,
	ar agendaRepository.Repository,
	parser nlp.IParser,
	redis redis.IRedis,
	whatsapp whatsapp.IWhatsappSender,
	utils utils.IUtils,
) IAgendaService {
	return &agendaService{
		log:              log,
		agendaRepository: ar,
		parser:           parser,
		redis:            redis,
		whatsapp:         whatsapp,
		utils:            utils,
	}
}
