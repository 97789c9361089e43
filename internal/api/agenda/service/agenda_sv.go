package agendaService

import (
	"strings"
	"time"

	"RotinaGolang/internal/api/agenda"
	"RotinaGolang/internal/entity"
	contextPkg "RotinaGolang/pkg/context"
	"RotinaGolang/pkg/nlp"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *agendaService) ProcessCommand(ctx context.Context, req agenda.CommandRequest) (agenda.CommandResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.Text) == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Empty command text")
		return agenda.CommandResponse{}, agenda.ErrEmptyCommand
	}

	tzOffset := nlp.DefaultTZOffsetMinutes
	if req.TZOffsetMinutes != nil {
		tzOffset = *req.TZOffsetMinutes
	}

	origin := nlp.OriginChat
	if req.Origin != "" {
		origin = nlp.Origin(req.Origin)
	}

	if s.parser.IsQueryCommand(req.Text) {
		result := s.parser.ParseCommand(req.Text, origin, time.Now(), tzOffset)

		view, err := s.GetView(ctx, req.UserID, string(result.Query.Period), tzOffset)
		if err != nil {
			return agenda.CommandResponse{}, err
		}

		return agenda.CommandResponse{
			Query:   true,
			Period:  view.Period,
			Entries: view.Entries,
		}, nil
	}

	if !s.parser.IsCreationCommand(req.Text) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"text":       req.Text,
		}).Warn("Text is not an agenda command")
		return agenda.CommandResponse{}, agenda.ErrNotACommand
	}

	result := s.parser.ParseCommand(req.Text, origin, time.Now(), tzOffset)
	event := result.Event

	item := entity.FromParsedEvent(event, req.UserID)
	item.AudioLink = req.AudioLink

	created, err := s.storeItem(ctx, item)
	if err != nil {
		return agenda.CommandResponse{}, err
	}

	confirmation := s.parser.FormatForDisplay(event)
	s.sendConfirmation(ctx, req.UserID, confirmation)

	itemResponse := makeItemResponse(created)

	return agenda.CommandResponse{
		Item:         &itemResponse,
		Confirmation: confirmation,
	}, nil
}

func (s *agendaService) CreateItem(ctx context.Context, req agenda.CreateItemRequest) (entity.AgendaItem, error) {
	item := entity.AgendaItem{
		UserID:    req.UserID,
		Kind:      req.Kind,
		Title:     req.Title,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Recurring: req.Recurring,
		Weekdays:  pq.StringArray(req.Weekdays),
		Origin:    string(nlp.OriginManual),
		Category:  req.Category,
	}

	if item.Category == "" {
		item.Category = string(s.parser.InferCategory(req.Title))
	}

	return s.storeItem(ctx, item)
}

func (s *agendaService) storeItem(ctx context.Context, item entity.AgendaItem) (entity.AgendaItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.agendaRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.AgendaItem{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.AgendaItem{}, err
	}

	item.ID = ULID
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	if err := item.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid agenda item data")
		return entity.AgendaItem{}, err
	}

	if err := repo.Agenda.CreateItem(ctx, item); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create agenda item")
		return entity.AgendaItem{}, agenda.ErrCreateItem
	}

	if err := s.redis.InvalidateViews(ctx, item.UserID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    item.UserID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate cached views")
	}

	return item, nil
}

func (s *agendaService) GetItemByID(ctx context.Context, id string, userID string) (entity.AgendaItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.agendaRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.AgendaItem{}, err
	}

	item, err := repo.Agenda.GetItemByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get agenda item by ID")
		return entity.AgendaItem{}, err
	}

	if item.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"item_user_id":    item.UserID,
			"request_user_id": userID,
		}).Warn("Agenda item does not belong to user")
		return entity.AgendaItem{}, agenda.ErrItemNotOwned
	}

	return item, nil
}

func (s *agendaService) GetItemsByUserID(ctx context.Context, userID string) ([]entity.AgendaItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.agendaRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	items, err := repo.Agenda.GetItemsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get agenda items by user ID")
		return nil, err
	}

	return items, nil
}

func (s *agendaService) DeleteItem(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.agendaRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Agenda.GetItemByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing agenda item")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"item_user_id":    existing.UserID,
			"request_user_id": userID,
		}).Warn("Agenda item does not belong to user")
		return agenda.ErrItemNotOwned
	}

	if err := repo.Agenda.DeleteItem(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete agenda item")
		return agenda.ErrDeleteItem
	}

	if err := s.redis.InvalidateViews(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate cached views")
	}

	return nil
}

// sendConfirmation pushes the parsed confirmation sentence to the user's
// WhatsApp. Delivery is best effort: a failed send never fails the command.
func (s *agendaService) sendConfirmation(ctx context.Context, userID string, message string) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.whatsapp == nil || !s.whatsapp.IsConnected() {
		return
	}

	repo, err := s.agendaRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return
	}

	phoneNumber, err := repo.Users.GetPhoneNumber(ctx, userID)
	if err != nil || phoneNumber == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("No phone number available for confirmation")
		return
	}

	if err := s.whatsapp.SendMessage(ctx, phoneNumber, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to send WhatsApp confirmation")
	}
}

func makeItemResponse(item entity.AgendaItem) agenda.ItemResponse {
	return agenda.ItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		Kind:      item.Kind,
		Title:     item.Title,
		Date:      item.Date,
		StartTime: item.StartTime,
		EndTime:   item.EndTime,
		Recurring: item.Recurring,
		Weekdays:  item.Weekdays,
		Origin:    item.Origin,
		Category:  item.Category,
		AudioLink: item.AudioLink,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
	}
}
