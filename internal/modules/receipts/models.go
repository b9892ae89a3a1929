package receipts

import (
	"time"

	"github.com/Leestalion/quittance/internal/models"
	"github.com/google/uuid"
)

// Receipt is a monthly rent receipt. One per lease and period.
type Receipt struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LeaseID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_receipt_period"`
	PeriodMonth int        `gorm:"not null;uniqueIndex:idx_receipt_period"`
	PeriodYear  int        `gorm:"not null;uniqueIndex:idx_receipt_period"`
	BaseRent    int64      `gorm:"not null"`
	Charges     int64      `gorm:"not null;default:0"`
	TotalAmount int64      `gorm:"not null"`
	PaymentDate string     `gorm:"size:10;not null"`
	Status      string     `gorm:"size:20;not null;default:generated;index"`
	EmailSentAt *time.Time
	PDFPath     *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Receipt) TableName() string { return "receipts" }

func (r Receipt) ToModel() models.Receipt {
	var sentAt *string
	if r.EmailSentAt != nil {
		s := models.FormatTimestamp(*r.EmailSentAt)
		sentAt = &s
	}
	return models.Receipt{
		ID:          r.ID.String(),
		LeaseID:     r.LeaseID.String(),
		PeriodMonth: r.PeriodMonth,
		PeriodYear:  r.PeriodYear,
		BaseRent:    models.Money(r.BaseRent),
		Charges:     models.Money(r.Charges),
		TotalAmount: models.Money(r.TotalAmount),
		PaymentDate: r.PaymentDate,
		Status:      r.Status,
		EmailSentAt: sentAt,
		PDFPath:     r.PDFPath,
		CreatedAt:   models.FormatTimestamp(r.CreatedAt),
		UpdatedAt:   models.FormatTimestamp(r.UpdatedAt),
	}
}
