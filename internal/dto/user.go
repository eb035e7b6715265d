package dto

import (
	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// CreateUserRequest carries the fields of a new user. The password arrives in
// plaintext and is hashed before storage.
type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries a partial user update. The password is re-hashed
// only when supplied.
type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// UserResponse is the wire form of a user. The password hash never leaves
// the server.
type UserResponse struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// ListUsersResponse wraps the user list in its success envelope.
type ListUsersResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its wire form.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		FullName: u.Profile.FullName,
		Email:    u.Profile.Email,
		Phone:    u.Profile.Phone,
		Role:     u.Profile.Role,
	}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(us []domain.User) []UserResponse {
	out := make([]UserResponse, len(us))
	for i := range us {
		out[i] = ToUserResponse(&us[i])
	}
	return out
}
