package dto

import "jobstreet_backend/internal/models"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=10,max=11"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID     uint              `json:"id"`
	Email  string            `json:"email"`
	Name   string            `json:"name"`
	Phone  string            `json:"phone,omitempty"`
	Resume string            `json:"resume,omitempty"`
	Status models.UserStatus `json:"status"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Phone  *string `json:"phone,omitempty" validate:"omitempty,min=10,max=11"`
	Resume *string `json:"resume,omitempty"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Phone:  user.Phone,
		Resume: user.Resume,
		Status: user.Status,
	}
}
