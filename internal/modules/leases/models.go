package leases

import (
	"time"

	"github.com/Leestalion/quittance/internal/models"
	"github.com/google/uuid"
)

// Lease binds a tenant to a property. Amounts are stored in cents.
type Lease struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate      string    `gorm:"size:10;not null"`
	EndDate        *string   `gorm:"size:10"`
	DurationMonths int       `gorm:"not null"`
	MonthlyRent    int64     `gorm:"not null"`
	Charges        int64     `gorm:"not null;default:0"`
	Deposit        int64     `gorm:"not null;default:0"`
	RentRevision   bool      `gorm:"not null;default:false"`
	InventoryDate  *string   `gorm:"size:10"`
	Status         string    `gorm:"size:20;not null;default:active;index"`
	PDFPath        *string   `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Lease) TableName() string { return "leases" }

func (l Lease) ToModel() models.Lease {
	return models.Lease{
		ID:             l.ID.String(),
		PropertyID:     l.PropertyID.String(),
		TenantID:       l.TenantID.String(),
		StartDate:      l.StartDate,
		EndDate:        l.EndDate,
		DurationMonths: l.DurationMonths,
		MonthlyRent:    models.Money(l.MonthlyRent),
		Charges:        models.Money(l.Charges),
		Deposit:        models.Money(l.Deposit),
		RentRevision:   l.RentRevision,
		InventoryDate:  l.InventoryDate,
		Status:         l.Status,
		PDFPath:        l.PDFPath,
		CreatedAt:      models.FormatTimestamp(l.CreatedAt),
		UpdatedAt:      models.FormatTimestamp(l.UpdatedAt),
	}
}
