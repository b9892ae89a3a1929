package stores

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
	"github.com/Leestalion/quittance/internal/session"
)

// ErrSessionExpired wraps the failure that ended a session during
// FetchCurrentUser.
var ErrSessionExpired = errors.New("session expired")

type AuthAPI interface {
	Login(email, password string) (dto.AuthResponse, error)
	Register(req dto.RegisterRequest) (dto.AuthResponse, error)
	CurrentUser() (models.User, error)
}

// Auth owns the authenticated user. The token itself lives in the session
// slot so the HTTP client and this store always agree on it.
type Auth struct {
	remote AuthAPI
	slot   *session.Slot

	mu   sync.RWMutex
	user *models.User
}

func NewAuth(remote AuthAPI, slot *session.Slot) *Auth {
	return &Auth{remote: remote, slot: slot}
}

func (a *Auth) User() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return models.User{}, false
	}
	return *a.user, true
}

func (a *Auth) Token() string {
	return a.slot.Token()
}

// IsAuthenticated is true while a token is held, whether or not the user has
// been loaded yet.
func (a *Auth) IsAuthenticated() bool {
	return a.slot.Token() != ""
}

func (a *Auth) Login(email, password string) error {
	resp, err := a.remote.Login(email, password)
	if err != nil {
		return err
	}
	return a.start(resp)
}

func (a *Auth) Register(req dto.RegisterRequest) error {
	resp, err := a.remote.Register(req)
	if err != nil {
		return err
	}
	return a.start(resp)
}

// FetchCurrentUser resolves the user behind the held token. Without a token
// it does nothing. Any failure ends the session.
func (a *Auth) FetchCurrentUser() error {
	if !a.IsAuthenticated() {
		return nil
	}

	user, err := a.remote.CurrentUser()
	if err != nil {
		slog.Error("failed to fetch current user", "error", err)
		a.Logout()
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	a.mu.Lock()
	a.user = &user
	a.mu.Unlock()
	return nil
}

// Logout clears the user and the token. Calling it twice is harmless.
func (a *Auth) Logout() {
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()

	if err := a.slot.Clear(); err != nil {
		slog.Warn("failed to clear stored token", "error", err)
	}
}

func (a *Auth) start(resp dto.AuthResponse) error {
	if err := a.slot.Set(resp.Token); err != nil {
		return err
	}
	a.mu.Lock()
	user := resp.User
	a.user = &user
	a.mu.Unlock()
	return nil
}
