package service

import (
	"context"
	"crew/infras/otel"
	"crew/internal/domains/mechanic/model"
	"crew/internal/domains/mechanic/model/dto"
	"crew/internal/state"
	"crew/shared/constant"
	"crew/shared/failure"
	"crew/shared/timezone"
	"crew/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Mechanic interface {
	Create(ctx context.Context, req dto.CreateMechanicRequest) (dto.MechanicResponse, error)
	GetAll(ctx context.Context) (dto.GetMechanicsResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateMechanicRequest) (dto.MechanicResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	store state.Store
	otel  otel.Otel
}

func New(store state.Store, otel otel.Otel) Mechanic {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMechanicRequest) (res dto.MechanicResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateCredential(req.LoginMethod, req.Credential); err != nil {
		return res, err
	}

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	mechanic := req.ToModel(timezone.Now())
	st.Mechanics = state.Upsert(st.Mechanics, mechanic)

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to create mechanic")

		return res, fmt.Errorf("failed to create mechanic: %w", err)
	}

	res.FromModel(mechanic)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetMechanicsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	res.FromModels(st.Mechanics)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateMechanicRequest) (res dto.MechanicResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMechanicRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	mechanic, found := state.FindByID(st.Mechanics, id)
	if !found {
		return res, failure.NotFound("mechanic not found") // nolint:wrapcheck
	}

	if req.Name != "" {
		mechanic.Name = req.Name
	}

	if req.LoginMethod != "" {
		mechanic.LoginMethod = model.LoginMethod(req.LoginMethod)
	}

	if req.Credential != "" {
		mechanic.Credential = req.Credential
	}

	if err = validateCredential(string(mechanic.LoginMethod), mechanic.Credential); err != nil {
		return res, err
	}

	st.Mechanics = state.Upsert(st.Mechanics, mechanic)

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to update mechanic")

		return res, fmt.Errorf("failed to update mechanic: %w", err)
	}

	res.FromModel(mechanic)

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

	if _, found := state.FindByID(st.Mechanics, id); !found {
		return failure.NotFound("mechanic not found") // nolint:wrapcheck
	}

	st.Mechanics = state.Remove(st.Mechanics, id)

	if st.CurrentMechanicID == id {
		st.CurrentMechanicID = ""
	}

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to delete mechanic")

		return fmt.Errorf("failed to delete mechanic: %w", err)
	}

	return nil
}

// validateCredential enforces the 4-digit format for PIN logins; passwords are
// free-form.
func validateCredential(loginMethod, credential string) error {
	if loginMethod == "" || loginMethod == string(model.LoginMethodPIN) {
		if err := validator.ValidateVar(credential, "pin"); err != nil {
			return failure.BadRequestFromString("credential must be a 4 digit PIN") // nolint:wrapcheck
		}
	}

	return nil
}
