package properties

import (
	"time"

	"github.com/Leestalion/quittance/internal/models"
	"github.com/google/uuid"
)

type Property struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	Address        string     `gorm:"type:text;not null"`
	PropertyType   string     `gorm:"size:50;not null"`
	Furnished      bool       `gorm:"not null;default:false"`
	SurfaceArea    *float64
	Rooms          *int
	MaxOccupants   int     `gorm:"not null;default:1"`
	Description    *string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Property) TableName() string { return "properties" }

func (p Property) ToModel() models.Property {
	var orgID *string
	if p.OrganizationID != nil {
		s := p.OrganizationID.String()
		orgID = &s
	}
	return models.Property{
		ID:             p.ID.String(),
		UserID:         p.UserID.String(),
		OrganizationID: orgID,
		Address:        p.Address,
		PropertyType:   p.PropertyType,
		Furnished:      p.Furnished,
		SurfaceArea:    p.SurfaceArea,
		Rooms:          p.Rooms,
		MaxOccupants:   p.MaxOccupants,
		Description:    p.Description,
		CreatedAt:      models.FormatTimestamp(p.CreatedAt),
		UpdatedAt:      models.FormatTimestamp(p.UpdatedAt),
	}
}
