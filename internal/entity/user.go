package entity

// UserLoginData is the subset of the user record carried inside access token
// claims. Accounts themselves are managed by the external auth service; this
// backend only verifies tokens and reads the phone number for notifications.
type UserLoginData struct {
	ID          string
	Username    string
	Email       string
	PhoneNumber string
}
