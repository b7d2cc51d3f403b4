package service

import (
	"context"
	"crew/infras/otel"
	"crew/internal/domains/event/model/dto"
	"crew/internal/state"
	"crew/shared/constant"
	"crew/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateWeeklyEventRequest) (dto.WeeklyEventResponse, error)
	GetAll(ctx context.Context) (dto.GetWeeklyEventsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	store state.Store
	otel  otel.Otel
}

func New(store state.Store, otel otel.Otel) Event {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWeeklyEventRequest) (res dto.WeeklyEventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	event := req.ToModel()
	st.WeeklyEvents = state.Upsert(st.WeeklyEvents, event)

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to create weekly event")

		return res, fmt.Errorf("failed to create weekly event: %w", err)
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetWeeklyEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	res.FromModels(st.WeeklyEvents)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return fmt.Errorf("failed to load state: %w", err)
	}

	if _, found := state.FindByID(st.WeeklyEvents, id); !found {
		return failure.NotFound("weekly event not found") // nolint:wrapcheck
	}

	st.WeeklyEvents = state.Remove(st.WeeklyEvents, id)

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to delete weekly event")

		return fmt.Errorf("failed to delete weekly event: %w", err)
	}

	return nil
}
