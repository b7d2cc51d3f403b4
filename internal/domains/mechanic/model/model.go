package model

import (
	"time"
)

const (
	EntityName = "mechanic"
)

// LoginMethod selects which credential format the mechanic logs in with.
type LoginMethod string

const (
	LoginMethodPIN      LoginMethod = "PIN"
	LoginMethodPassword LoginMethod = "PASSWORD"
)

// Mechanic is both the login identity and the assignable resource on a
// booking. The credential is a plaintext UX gate, not a security boundary.
type Mechanic struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	LoginMethod LoginMethod `json:"login_method"`
	Credential  string      `json:"credential"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (m Mechanic) GetID() string {
	return m.ID
}
