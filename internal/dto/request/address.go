package request

// AddressRequest is used for both create and update. Name and email are
// taken from the account, not the body.
type AddressRequest struct {
	Mobile   string `json:"mobile" validate:"required,max=32"`
	Flat     string `json:"flat" validate:"required,max=255"`
	Landmark string `json:"landmark" validate:"required,max=255"`
	Street   string `json:"street" validate:"required,max=255"`
	City     string `json:"city" validate:"required,max=100"`
	State    string `json:"state" validate:"required,max=100"`
	Country  string `json:"country" validate:"required,max=100"`
	PinCode  string `json:"pinCode" validate:"required,max=20"`
}
