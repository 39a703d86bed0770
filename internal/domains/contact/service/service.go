package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Contact=MockContactService

import (
	"context"
	"fmt"

	"folio/config"
	"folio/infras/kafka"
	"folio/infras/otel"
	"folio/internal/domains/contact/model"
	"folio/internal/domains/contact/model/dto"
	"folio/internal/domains/contact/repository"
	"folio/shared"
	"folio/shared/constant"
	gDto "folio/shared/dto"
	"folio/shared/validator"

	"github.com/rs/zerolog/log"
)

const defaultContactTopic = "folio.contact.submitted"

type Contact interface {
	Submit(ctx context.Context, req dto.SubmitRequest, origin dto.Origin) (dto.MessageResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetMessagesResponse, error)
}

type serviceImpl struct {
	repo  repository.Contact
	kafka kafka.Client
	otel  otel.Otel
	topic string
}

func New(cfg *config.Config, repo repository.Contact, kafka kafka.Client, otel otel.Otel) Contact {
	topic := cfg.External.Kafka.ContactTopic
	if topic == constant.Empty {
		topic = defaultContactTopic
	}

	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		otel:  otel,
		topic: topic,
	}
}

// Submit stores the message and announces it on the contact topic. The
// message is kept even when the announcement fails.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequest, origin dto.Origin) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	message := req.ToModel(origin)

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to store contact message")

		return res, fmt.Errorf("failed to store contact message: %w", err)
	}

	s.publish(ctx, message)

	res.FromModel(message)

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, message model.Message) {
	if !s.kafka.Enabled() {
		return
	}

	var event dto.Event
	event.FromModel(message)

	if err := s.kafka.SendMessages(ctx, s.topic, kafka.Message{Key: message.ID, Value: event}); err != nil {
		log.Warn().Err(err).Str("id", message.ID).Str("topic", s.topic).Msg("failed to publish contact message")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.OrderBy(fmt.Sprintf("%s.%s", model.TableName, model.FieldCreatedAt), gDto.SortDirDesc)

	messages, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, fmt.Errorf("failed to get contact messages: %w", err)
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to count contact messages: %w", err)
	}

	res.FromModels(messages, total, shared.CalculateTotalPage(total, params.Limit))

	return res, nil
}
