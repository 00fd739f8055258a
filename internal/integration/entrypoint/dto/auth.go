// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farmlink/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Phone    string `json:"phone" binding:"omitempty,min=10,max=15"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=farmer buyer"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordRequest represents the request body for forgot password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the request body for password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID          string               `json:"id"`
	Email       string               `json:"email"`
	Name        string               `json:"name"`
	Phone       string               `json:"phone"`
	Role        string               `json:"role"`
	Location    LocationResponse     `json:"location"`
	BankDetails *BankDetailsResponse `json:"bank_details,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// LocationResponse represents a user's address in API responses.
type LocationResponse struct {
	Village  string `json:"village"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// BankDetailsResponse represents payout account details in API responses.
// The account number is masked to its last four digits.
type BankDetailsResponse struct {
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
	BankName      string `json:"bank_name"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Phone: user.Phone,
		Role:  string(user.Role),
		Location: LocationResponse{
			Village:  user.Location.Village,
			District: user.Location.District,
			State:    user.Location.State,
			Pincode:  user.Location.Pincode,
		},
		CreatedAt: user.CreatedAt,
	}
	if user.BankDetails.AccountNumber != "" {
		resp.BankDetails = &BankDetailsResponse{
			AccountHolder: user.BankDetails.AccountHolder,
			AccountNumber: maskAccountNumber(user.BankDetails.AccountNumber),
			IFSC:          user.BankDetails.IFSC,
			BankName:      user.BankDetails.BankName,
		}
	}
	return resp
}

// maskAccountNumber hides all but the last four digits.
func maskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	masked := make([]byte, len(number)-4)
	for i := range masked {
		masked[i] = 'X'
	}
	return string(masked) + number[len(number)-4:]
}
