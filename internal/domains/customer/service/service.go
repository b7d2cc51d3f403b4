package service

import (
	"context"
	"crew/infras/otel"
	"crew/internal/domains/customer/model/dto"
	"crew/internal/state"
	"crew/shared/constant"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Customer interface {
	GetAll(ctx context.Context) (dto.GetCustomersResponse, error)
}

type serviceImpl struct {
	store state.Store
	otel  otel.Otel
}

func New(store state.Store, otel otel.Otel) Customer {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	res.FromModels(st.Customers)

	return res, nil
}
