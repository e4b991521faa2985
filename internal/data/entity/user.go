package entity

import "github.com/google/uuid"

type User struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	ImageURL     string `db:"image_url"`
}

// Identity is the resolved caller of a protected request. It is a value
// copy of the user row, never a live record.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
	ImageURL string
}

func (u *User) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		ImageURL: u.ImageURL,
	}
}
