package api

import (
	"github.com/Leestalion/quittance/internal/client"
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
)

type Auth struct {
	c *client.Client
}

func NewAuth(c *client.Client) *Auth {
	return &Auth{c: c}
}

func (a *Auth) Login(email, password string) (dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := a.c.Post("/auth/login", dto.LoginRequest{Email: email, Password: password}, &out)
	return out, err
}

func (a *Auth) Register(req dto.RegisterRequest) (dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := a.c.Post("/auth/register", req, &out)
	return out, err
}

// CurrentUser resolves the user behind the bearer token.
func (a *Auth) CurrentUser() (models.User, error) {
	var out models.User
	err := a.c.Get("/auth/me", nil, &out)
	return out, err
}
