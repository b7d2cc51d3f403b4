package model

const (
	EntityName = "customer"
)

// Customer is upserted by case-insensitive name match when a booking is
// created; the phone number is overwritten on match if it changed.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (c Customer) GetID() string {
	return c.ID
}
