package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "crew/infras/otel/mocks"
	"crew/internal/domains/event/model"
	"crew/internal/domains/event/model/dto"
	"crew/internal/domains/event/service"
	"crew/internal/state"
	stateMocks "crew/internal/state/mocks"
	"crew/shared/failure"
)

func TestEventService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	svc := service.New(mockStore, otelMocks.NewOtel())

	mockStore.EXPECT().Load(gomock.Any()).Return(state.Default(), nil)
	mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Create(context.Background(), dto.CreateWeeklyEventRequest{
		Title:    "Lunch",
		FromHour: 12,
		ToHour:   13,
	})

	require.NoError(t, err)
	assert.Equal(t, "Lunch", res.Title)
	assert.NotEmpty(t, res.ID)
}

func TestEventService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := stateMocks.NewMockStore(ctrl)
	svc := service.New(mockStore, otelMocks.NewOtel())

	existing := model.WeeklyEvent{ID: "ev-1", Title: "Lunch", FromHour: 12, ToHour: 13}

	t.Run("removes the event", func(t *testing.T) {
		st := state.Default()
		st.WeeklyEvents = append(st.WeeklyEvents, existing)

		var saved state.AppState

		mockStore.EXPECT().Load(gomock.Any()).Return(st, nil)
		mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s state.AppState) error {
				saved = s

				return nil
			})

		require.NoError(t, svc.Delete(context.Background(), "ev-1"))
		assert.Empty(t, saved.WeeklyEvents)
	})

	t.Run("unknown event", func(t *testing.T) {
		mockStore.EXPECT().Load(gomock.Any()).Return(state.Default(), nil)

		err := svc.Delete(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
