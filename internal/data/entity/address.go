package entity

import "github.com/google/uuid"

// Address is the single shipping address of a user.
type Address struct {
	Base
	UserID   uuid.UUID `db:"user_id"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	Mobile   string    `db:"mobile"`
	Flat     string    `db:"flat"`
	Landmark string    `db:"landmark"`
	Street   string    `db:"street"`
	City     string    `db:"city"`
	State    string    `db:"state"`
	Country  string    `db:"country"`
	PinCode  string    `db:"pin_code"`
}
