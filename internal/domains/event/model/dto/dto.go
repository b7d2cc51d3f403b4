package dto

import (
	"crew/internal/domains/event/model"

	"github.com/google/uuid"
)

type CreateWeeklyEventRequest struct {
	Title    string `json:"title" validate:"required,max=120"`
	FromHour int    `json:"from_hour" validate:"gte=7,lte=17"`
	ToHour   int    `json:"to_hour" validate:"gte=8,lte=18,gtfield=FromHour"`
}

func (r CreateWeeklyEventRequest) ToModel() model.WeeklyEvent {
	return model.WeeklyEvent{
		ID:       uuid.NewString(),
		Title:    r.Title,
		FromHour: r.FromHour,
		ToHour:   r.ToHour,
	}
}

type WeeklyEventResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	FromHour int    `json:"from_hour"`
	ToHour   int    `json:"to_hour"`
}

func (r *WeeklyEventResponse) FromModel(event model.WeeklyEvent) {
	r.ID = event.ID
	r.Title = event.Title
	r.FromHour = event.FromHour
	r.ToHour = event.ToHour
}

type GetWeeklyEventsResponse struct {
	Events []WeeklyEventResponse `json:"events"`
}

func (r *GetWeeklyEventsResponse) FromModels(events []model.WeeklyEvent) {
	r.Events = make([]WeeklyEventResponse, len(events))
	for i, event := range events {
		r.Events[i].FromModel(event)
	}
}
