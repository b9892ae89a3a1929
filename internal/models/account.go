package models

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout renders stored times the way the API has always sent them:
// naive UTC, no zone suffix.
const TimestampLayout = "2006-01-02T15:04:05"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Account is the persisted user, password hash included.
type Account struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"size:255;not null;uniqueIndex"`
	Password   string    `gorm:"size:255;not null"`
	Name       string    `gorm:"size:255;not null"`
	Address    string    `gorm:"type:text;not null"`
	Phone      *string   `gorm:"size:50"`
	BirthDate  *string   `gorm:"size:10"`
	BirthPlace *string   `gorm:"size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Account) TableName() string { return "users" }

func (a Account) ToUser() User {
	return User{
		ID:         a.ID.String(),
		Email:      a.Email,
		Name:       a.Name,
		Address:    a.Address,
		Phone:      a.Phone,
		BirthDate:  a.BirthDate,
		BirthPlace: a.BirthPlace,
		CreatedAt:  FormatTimestamp(a.CreatedAt),
		UpdatedAt:  FormatTimestamp(a.UpdatedAt),
	}
}
