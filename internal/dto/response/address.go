package response

import (
	"time"

	"ecommerce-backend/internal/data/entity"
)

type AddressResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Flat      string    `json:"flat"`
	Landmark  string    `json:"landmark"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	PinCode   string    `json:"pinCode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func AddressToResponse(a *entity.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Mobile:    a.Mobile,
		Flat:      a.Flat,
		Landmark:  a.Landmark,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Country:   a.Country,
		PinCode:   a.PinCode,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
