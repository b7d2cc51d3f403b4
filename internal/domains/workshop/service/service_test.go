package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "crew/infras/otel/mocks"
	bookingModel "crew/internal/domains/booking/model"
	"crew/internal/domains/workshop/model"
	"crew/internal/domains/workshop/model/dto"
	"crew/internal/domains/workshop/service"
	"crew/internal/state"
	stateMocks "crew/internal/state/mocks"
	"crew/shared/failure"
)

func TestWorkshopService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	svc := service.New(mockStore, otelMocks.NewOtel())

	// Creating a workshop starts from scratch: whatever was saved before is
	// replaced wholesale, so there is no Load at all.
	var saved state.AppState

	mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s state.AppState) error {
			saved = s

			return nil
		})

	res, err := svc.Create(context.Background(), dto.CreateWorkshopRequest{Name: "Bergs Bil", Icon: "wrench"})

	require.NoError(t, err)
	assert.Equal(t, "Bergs Bil", res.Name)
	require.NotNil(t, saved.Workshop)
	assert.Empty(t, saved.Bookings)
	assert.Empty(t, saved.Mechanics)
}

func TestWorkshopService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	svc := service.New(mockStore, otelMocks.NewOtel())

	t.Run("no workshop yet", func(t *testing.T) {
		mockStore.EXPECT().Load(gomock.Any()).Return(state.Default(), nil)

		res, err := svc.Get(context.Background())

		require.NoError(t, err)
		assert.Nil(t, res.Workshop)
	})

	t.Run("existing workshop with workday", func(t *testing.T) {
		st := state.Default()
		st.Workshop = &model.Workshop{ID: "ws-1", Name: "Bergs Bil"}
		st.SelectedWorkday = "2026-09-01"

		mockStore.EXPECT().Load(gomock.Any()).Return(st, nil)

		res, err := svc.Get(context.Background())

		require.NoError(t, err)
		require.NotNil(t, res.Workshop)
		assert.Equal(t, "Bergs Bil", res.Workshop.Name)
		assert.Equal(t, "2026-09-01", res.SelectedWorkday)
	})
}

func TestWorkshopService_SetWorkday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	svc := service.New(mockStore, otelMocks.NewOtel())

	t.Run("persists the selected day", func(t *testing.T) {
		st := state.Default()
		st.Workshop = &model.Workshop{ID: "ws-1", Name: "Bergs Bil"}
		st.Bookings = append(st.Bookings, bookingModel.Booking{ID: "job-1"})

		var saved state.AppState

		mockStore.EXPECT().Load(gomock.Any()).Return(st, nil)
		mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s state.AppState) error {
				saved = s

				return nil
			})

		require.NoError(t, svc.SetWorkday(context.Background(), dto.SetWorkdayRequest{Date: "2026-09-02"}))
		assert.Equal(t, "2026-09-02", saved.SelectedWorkday)
		assert.Len(t, saved.Bookings, 1)
	})

	t.Run("requires a workshop", func(t *testing.T) {
		mockStore.EXPECT().Load(gomock.Any()).Return(state.Default(), nil)

		err := svc.SetWorkday(context.Background(), dto.SetWorkdayRequest{Date: "2026-09-02"})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestWorkshopService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	svc := service.New(mockStore, otelMocks.NewOtel())

	mockStore.EXPECT().Reset(gomock.Any()).Return(nil)

	require.NoError(t, svc.Reset(context.Background()))
}
