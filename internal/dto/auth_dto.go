package dto

import "github.com/Leestalion/quittance/internal/models"

type RegisterRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Phone      *string `json:"phone,omitempty"`
	BirthDate  *string `json:"birth_date,omitempty"`
	BirthPlace *string `json:"birth_place,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Modules   int    `json:"modules"`
}
