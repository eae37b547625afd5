// file: internals/features/users/dto/user_dto.go
package dto

import m "lesprivat_backend/internals/features/users/model"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=owner admin teacher viewer"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt int64         `json:"expires_at"`
	User      *UserResponse `json:"user"`
}

type UserResponse struct {
	UserID          int64  `json:"user_id"`
	UserPartitionID int64  `json:"user_partition_id"`
	UserName        string `json:"user_name"`
	UserEmail       string `json:"user_email"`
	UserRole        string `json:"user_role"`
}

func FromUser(u *m.UserModel) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		UserID:          u.UserID,
		UserPartitionID: u.UserPartitionID,
		UserName:        u.UserName,
		UserEmail:       u.UserEmail,
		UserRole:        u.UserRole,
	}
}
