package dto

import (
	"crew/internal/domains/mechanic/model"
	"crew/shared/constant"
	"time"

	"github.com/google/uuid"
)

type CreateMechanicRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	LoginMethod string `json:"login_method" validate:"omitempty,oneof=PIN PASSWORD"`
	Credential  string `json:"credential"   validate:"required,max=100"`
}

func (c *CreateMechanicRequest) ToModel(now time.Time) model.Mechanic {
	loginMethod := model.LoginMethodPIN
	if c.LoginMethod != "" {
		loginMethod = model.LoginMethod(c.LoginMethod)
	}

	return model.Mechanic{
		ID:          uuid.NewString(),
		Name:        c.Name,
		LoginMethod: loginMethod,
		Credential:  c.Credential,
		CreatedAt:   now,
	}
}

type UpdateMechanicRequest struct {
	Name        string `json:"name"         validate:"omitempty,max=100"`
	LoginMethod string `json:"login_method" validate:"omitempty,oneof=PIN PASSWORD"`
	Credential  string `json:"credential"   validate:"omitempty,max=100"`
}

// MechanicResponse never echoes the credential back out.
type MechanicResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LoginMethod string `json:"login_method"`
	CreatedAt   string `json:"created_at"`
}

func (r *MechanicResponse) FromModel(mechanic model.Mechanic) {
	r.ID = mechanic.ID
	r.Name = mechanic.Name
	r.LoginMethod = string(mechanic.LoginMethod)
	r.CreatedAt = mechanic.CreatedAt.Format(constant.DateFormat)
}

type GetMechanicsResponse struct {
	Mechanics []MechanicResponse `json:"mechanics"`
}

func (r *GetMechanicsResponse) FromModels(mechanics []model.Mechanic) {
	r.Mechanics = make([]MechanicResponse, len(mechanics))
	for i, mechanic := range mechanics {
		r.Mechanics[i].FromModel(mechanic)
	}
}
