package dto

import (
	"time"

	"crew/internal/domains/workshop/model"
	"crew/shared/constant"

	"github.com/google/uuid"
)

type CreateWorkshopRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Icon string `json:"icon" validate:"max=32"`
}

func (r CreateWorkshopRequest) ToModel(now time.Time) model.Workshop {
	return model.Workshop{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Icon:      r.Icon,
		CreatedAt: now,
	}
}

type SetWorkdayRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type WorkshopResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	CreatedAt string `json:"created_at"`
}

func (r *WorkshopResponse) FromModel(workshop model.Workshop) {
	r.ID = workshop.ID
	r.Name = workshop.Name
	r.Icon = workshop.Icon
	r.CreatedAt = workshop.CreatedAt.Format(constant.DateFormat)
}

type GetWorkshopResponse struct {
	Workshop        *WorkshopResponse `json:"workshop"`
	SelectedWorkday string            `json:"selected_workday,omitempty"`
}
