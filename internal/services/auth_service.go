package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Leestalion/quittance/internal/config"
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
	"github.com/Leestalion/quittance/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	v := validation.Violations{}
	validation.Email("email", email, v)
	validation.MinLength("password", req.Password, minPasswordLength, v)
	validation.Required("name", req.Name, v)
	validation.Required("address", req.Address, v)
	validation.OptionalDate("birth_date", req.BirthDate, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		ID:         uuid.New(),
		Email:      email,
		Password:   string(hash),
		Name:       strings.TrimSpace(req.Name),
		Address:    req.Address,
		Phone:      req.Phone,
		BirthDate:  req.BirthDate,
		BirthPlace: req.BirthPlace,
	}

	if err := s.db.Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issue(&account)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var account models.Account
	if err := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&account).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(&account)
}

func (s *AuthService) CurrentUser(userID uuid.UUID) (*models.User, error) {
	var account models.Account
	if err := s.db.First(&account, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user := account.ToUser()
	return &user, nil
}

func (s *AuthService) issue(account *models.Account) (*dto.AuthResponse, error) {
	token, err := s.generateAccessToken(account)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: account.ToUser()}, nil
}

func (s *AuthService) generateAccessToken(account *models.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID.String(),
		"email": account.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
