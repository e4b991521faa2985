package request

type UpdateProfileImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=5,max=72"`
}
