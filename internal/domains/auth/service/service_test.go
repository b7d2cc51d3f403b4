package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"crew/infras/jwt"
	jwtMocks "crew/infras/jwt/mocks"
	otelMocks "crew/infras/otel/mocks"
	"crew/internal/domains/auth/model/dto"
	"crew/internal/domains/auth/service"
	mechanicModel "crew/internal/domains/mechanic/model"
	"crew/internal/state"
	stateMocks "crew/internal/state/mocks"
	"crew/shared/failure"
)

func stateWithMechanic() state.AppState {
	st := state.Default()
	st.Mechanics = append(st.Mechanics, mechanicModel.Mechanic{
		ID:          "mech-1",
		Name:        "Lasse",
		LoginMethod: mechanicModel.LoginMethodPIN,
		Credential:  "1234",
	})

	return st
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockStore, mockJWT, otelMocks.NewOtel())

	pair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login marks the mechanic active",
			req:  dto.LoginRequest{MechanicID: "mech-1", Credential: "1234"},
			setupMock: func() {
				mockStore.EXPECT().Load(gomock.Any()).Return(stateWithMechanic(), nil)

				mockJWT.EXPECT().
					GenerateTokenPair("mech-1", "Lasse").
					Return(pair, nil)

				mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s state.AppState) error {
						assert.Equal(t, "mech-1", s.CurrentMechanicID)

						return nil
					})
			},
		},
		{
			name: "wrong credential",
			req:  dto.LoginRequest{MechanicID: "mech-1", Credential: "0000"},
			setupMock: func() {
				mockStore.EXPECT().Load(gomock.Any()).Return(stateWithMechanic(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "unknown mechanic",
			req:  dto.LoginRequest{MechanicID: "ghost", Credential: "1234"},
			setupMock: func() {
				mockStore.EXPECT().Load(gomock.Any()).Return(stateWithMechanic(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{MechanicID: "mech-1", Credential: "1234"},
			setupMock: func() {
				mockStore.EXPECT().Load(gomock.Any()).Return(stateWithMechanic(), nil)

				mockJWT.EXPECT().
					GenerateTokenPair("mech-1", "Lasse").
					Return(nil, errors.New("token generation failed"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "mech-1", res.MechanicID)
			assert.Equal(t, "Lasse", res.MechanicName)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockStore, mockJWT, otelMocks.NewOtel())

	t.Run("valid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("old-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.Refresh(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("bad").
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.Refresh(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockStore, mockJWT, otelMocks.NewOtel())

	t.Run("logout clears the active mechanic", func(t *testing.T) {
		st := stateWithMechanic()
		st.CurrentMechanicID = "mech-1"

		mockStore.EXPECT().Load(gomock.Any()).Return(st, nil)
		mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s state.AppState) error {
				assert.Empty(t, s.CurrentMechanicID)

				return nil
			})

		require.NoError(t, svc.Logout(context.Background(), "mech-1"))
	})

	t.Run("logout by a non-active mechanic changes nothing", func(t *testing.T) {
		st := stateWithMechanic()
		st.CurrentMechanicID = "mech-1"

		mockStore.EXPECT().Load(gomock.Any()).Return(st, nil)

		require.NoError(t, svc.Logout(context.Background(), "mech-2"))
	})
}
