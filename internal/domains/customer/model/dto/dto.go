package dto

import (
	"crew/internal/domains/customer/model"
)

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (r *CustomerResponse) FromModel(customer model.Customer) {
	r.ID = customer.ID
	r.Name = customer.Name
	r.Phone = customer.Phone
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

func (r *GetCustomersResponse) FromModels(customers []model.Customer) {
	r.Customers = make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		r.Customers[i].FromModel(customer)
	}
}
