package dto

import (
	"strconv"

	"github.com/userecho/userecho/internal/model"
)

// CreateUserRequest represents the request body for creating a user.
// Fields are untyped: clients may send strings, numbers, booleans, null,
// objects or arrays.
type CreateUserRequest struct {
	Name  any `json:"name"`
	Email any `json:"email"`
}

// NameString returns the name field coerced to a string.
func (r CreateUserRequest) NameString() string {
	return coerceString(r.Name)
}

// EmailString returns the email field coerced to a string.
func (r CreateUserRequest) EmailString() string {
	return coerceString(r.Email)
}

// coerceString maps falsy values (null, false, 0, "") to the empty string
// and formats any other scalar. Objects and arrays are not text and also
// map to the empty string.
func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
		return "true"
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: FormatTimestamp(user.CreatedAt),
	}
}
