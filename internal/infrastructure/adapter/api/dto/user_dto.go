package dto

import "github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"

// RegisterRequest represents the API request for registering a user
type RegisterRequest struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"confirm_password"`
	Balance         FlexString `json:"balance"`
}

// LoginRequest represents the API request for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents the API request for a password reset code
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents the API request for resetting a password
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
	ResetCode   string `json:"reset_code"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Status      string `json:"status"`
	AccessToken string `json:"accessToken"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// UserData is the user payload on the dashboard, password excluded
type UserData struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Balance string `json:"balance"`
}

// DashboardResponse is returned from the dashboard endpoint
type DashboardResponse struct {
	Status       string            `json:"status"`
	Data         UserData          `json:"data"`
	Transactions []TransactionData `json:"transactions"`
}

// UserToData maps a domain user to its API payload
func UserToData(user *entity.User) UserData {
	return UserData{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Balance: user.GetBalance(),
	}
}
