package service

import (
	"context"
	"crew/infras/jwt"
	"crew/infras/otel"
	"crew/internal/domains/auth/model/dto"
	"crew/internal/state"
	"crew/shared/constant"
	"crew/shared/failure"
	"crypto/subtle"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, mechanicID string) error
}

type serviceImpl struct {
	store state.Store
	jwt   jwt.JWT
	otel  otel.Otel
}

func New(store state.Store, jwtService jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		store: store,
		jwt:   jwtService,
		otel:  otel,
	}
}

// Login checks the mechanic's PIN or password and marks them as the active
// mechanic. Credentials are a switch-user gate on a shared device, so a
// wrong credential and an unknown mechanic both come back as unauthorized.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	mechanic, found := state.FindByID(st.Mechanics, req.MechanicID)
	if !found {
		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	if subtle.ConstantTimeCompare([]byte(mechanic.Credential), []byte(req.Credential)) != 1 {
		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	pair, err := s.jwt.GenerateTokenPair(mechanic.ID, mechanic.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	st.CurrentMechanicID = mechanic.ID

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to save active mechanic")

		return res, fmt.Errorf("failed to save active mechanic: %w", err)
	}

	res.FromTokenPair(mechanic.ID, mechanic.Name, pair)

	return res, nil
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, mechanicID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return fmt.Errorf("failed to load state: %w", err)
	}

	if st.CurrentMechanicID == mechanicID {
		st.CurrentMechanicID = ""

		if err = s.store.Save(ctx, st); err != nil {
			log.Error().Err(err).Msg("failed to clear active mechanic")

			return fmt.Errorf("failed to clear active mechanic: %w", err)
		}
	}

	return nil
}
