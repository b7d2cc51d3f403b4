package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "crew/infras/otel/mocks"
	"crew/internal/domains/mechanic/model"
	"crew/internal/domains/mechanic/model/dto"
	"crew/internal/domains/mechanic/service"
	"crew/internal/state"
	stateMocks "crew/internal/state/mocks"
	"crew/shared/failure"
)

func stateWithMechanics(mechanics ...model.Mechanic) state.AppState {
	st := state.Default()
	st.Mechanics = append(st.Mechanics, mechanics...)

	return st
}

func TestMechanicService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	svc := service.New(mockStore, otelMocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateMechanicRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "PIN mechanic with four digits",
			req:  dto.CreateMechanicRequest{Name: "Lasse", Credential: "1234"},
			setupMock: func() {
				mockStore.EXPECT().Load(gomock.Any()).Return(state.Default(), nil)
				mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "PIN with letters is rejected",
			req:       dto.CreateMechanicRequest{Name: "Lasse", Credential: "12ab"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "PIN with wrong length is rejected",
			req:       dto.CreateMechanicRequest{Name: "Lasse", Credential: "12345"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "password method accepts any credential",
			req: dto.CreateMechanicRequest{
				Name:        "Stina",
				LoginMethod: string(model.LoginMethodPassword),
				Credential:  "hemligt lösenord",
			},
			setupMock: func() {
				mockStore.EXPECT().Load(gomock.Any()).Return(state.Default(), nil)
				mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Name, res.Name)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestMechanicService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	svc := service.New(mockStore, otelMocks.NewOtel())

	existing := model.Mechanic{
		ID:          "mech-1",
		Name:        "Lasse",
		LoginMethod: model.LoginMethodPIN,
		Credential:  "1234",
	}

	t.Run("rename keeps the credential valid", func(t *testing.T) {
		mockStore.EXPECT().Load(gomock.Any()).Return(stateWithMechanics(existing), nil)
		mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Update(context.Background(), "mech-1", dto.UpdateMechanicRequest{Name: "Lars"})

		require.NoError(t, err)
		assert.Equal(t, "Lars", res.Name)
	})

	t.Run("switching to PIN with an unfit credential is rejected", func(t *testing.T) {
		passworded := existing
		passworded.LoginMethod = model.LoginMethodPassword
		passworded.Credential = "long password"

		mockStore.EXPECT().Load(gomock.Any()).Return(stateWithMechanics(passworded), nil)

		_, err := svc.Update(context.Background(), "mech-1", dto.UpdateMechanicRequest{
			LoginMethod: string(model.LoginMethodPIN),
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown mechanic", func(t *testing.T) {
		mockStore.EXPECT().Load(gomock.Any()).Return(state.Default(), nil)

		_, err := svc.Update(context.Background(), "missing", dto.UpdateMechanicRequest{Name: "X"})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestMechanicService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	svc := service.New(mockStore, otelMocks.NewOtel())

	existing := model.Mechanic{ID: "mech-1", Name: "Lasse"}

	t.Run("deleting the active mechanic clears the marker", func(t *testing.T) {
		st := stateWithMechanics(existing)
		st.CurrentMechanicID = "mech-1"

		var saved state.AppState

		mockStore.EXPECT().Load(gomock.Any()).Return(st, nil)
		mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s state.AppState) error {
				saved = s

				return nil
			})

		require.NoError(t, svc.Delete(context.Background(), "mech-1"))
		assert.Empty(t, saved.Mechanics)
		assert.Empty(t, saved.CurrentMechanicID)
	})

	t.Run("unknown mechanic", func(t *testing.T) {
		mockStore.EXPECT().Load(gomock.Any()).Return(state.Default(), nil)

		err := svc.Delete(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
