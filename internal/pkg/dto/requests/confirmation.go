package requests

// ConfirmDoubleOptIn is the query string of a confirmation link.
type ConfirmDoubleOptIn struct {
	Email      string `query:"email" validate:"required,email"`
	Token      string `query:"token" validate:"required,not_blank"`
	Expiration string `query:"expiration" validate:"required"`
}
