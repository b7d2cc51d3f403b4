package service

import (
	"context"
	"crew/infras/otel"
	"crew/internal/domains/workshop/model/dto"
	"crew/internal/state"
	"crew/shared/constant"
	"crew/shared/failure"
	"crew/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Workshop interface {
	Create(ctx context.Context, req dto.CreateWorkshopRequest) (dto.WorkshopResponse, error)
	Get(ctx context.Context) (dto.GetWorkshopResponse, error)
	Reset(ctx context.Context) error
	SetWorkday(ctx context.Context, req dto.SetWorkdayRequest) error
}

type serviceImpl struct {
	store state.Store
	otel  otel.Otel
}

func New(store state.Store, otel otel.Otel) Workshop {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

// Create wipes any previous state before installing the new workshop. A
// workshop owns everything else, so replacing it starts from a clean slate.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWorkshopRequest) (res dto.WorkshopResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	workshop := req.ToModel(timezone.Now())

	st := state.Default()
	st.Workshop = &workshop

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to create workshop")

		return res, fmt.Errorf("failed to create workshop: %w", err)
	}

	res.FromModel(workshop)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.GetWorkshopResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	if st.Workshop != nil {
		workshop := &dto.WorkshopResponse{}
		workshop.FromModel(*st.Workshop)
		res.Workshop = workshop
	}

	res.SelectedWorkday = st.SelectedWorkday

	return res, nil
}

func (s *serviceImpl) Reset(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reset")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.store.Reset(ctx); err != nil {
		log.Error().Err(err).Msg("failed to reset workshop")

		return fmt.Errorf("failed to reset workshop: %w", err)
	}

	return nil
}

func (s *serviceImpl) SetWorkday(ctx context.Context, req dto.SetWorkdayRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetWorkday")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return fmt.Errorf("failed to load state: %w", err)
	}

	if st.Workshop == nil {
		return failure.NotFound("workshop not found") // nolint:wrapcheck
	}

	st.SelectedWorkday = req.Date

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to set workday")

		return fmt.Errorf("failed to set workday: %w", err)
	}

	return nil
}
