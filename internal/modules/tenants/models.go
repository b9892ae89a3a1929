package tenants

import (
	"time"

	"github.com/Leestalion/quittance/internal/models"
	"github.com/google/uuid"
)

// Tenant is a renter managed by a landlord account.
type Tenant struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"size:255;not null"`
	Email      *string   `gorm:"size:255"`
	Phone      *string   `gorm:"size:50"`
	Address    *string   `gorm:"type:text"`
	BirthDate  *string   `gorm:"size:10"`
	BirthPlace *string   `gorm:"size:255"`
	Notes      *string   `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Tenant) TableName() string { return "tenants" }

func (t Tenant) ToModel() models.Tenant {
	return models.Tenant{
		ID:         t.ID.String(),
		UserID:     t.UserID.String(),
		Name:       t.Name,
		Email:      t.Email,
		Phone:      t.Phone,
		Address:    t.Address,
		BirthDate:  t.BirthDate,
		BirthPlace: t.BirthPlace,
		Notes:      t.Notes,
		CreatedAt:  models.FormatTimestamp(t.CreatedAt),
		UpdatedAt:  models.FormatTimestamp(t.UpdatedAt),
	}
}
