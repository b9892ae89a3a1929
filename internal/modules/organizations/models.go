package organizations

import (
	"time"

	"github.com/Leestalion/quittance/internal/models"
	"github.com/google/uuid"
)

type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	LegalForm string    `gorm:"size:50;not null"`
	Siret     *string   `gorm:"size:14"`
	Address   string    `gorm:"type:text;not null"`
	Phone     *string   `gorm:"size:50"`
	Email     *string   `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Organization) TableName() string { return "organizations" }

func (o Organization) ToModel() models.Organization {
	return models.Organization{
		ID:        o.ID.String(),
		Name:      o.Name,
		LegalForm: o.LegalForm,
		Siret:     o.Siret,
		Address:   o.Address,
		Phone:     o.Phone,
		Email:     o.Email,
		CreatedAt: models.FormatTimestamp(o.CreatedAt),
		UpdatedAt: models.FormatTimestamp(o.UpdatedAt),
	}
}

// Member links a user to an organization. A user joins an organization at
// most once.
type Member struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_org_member"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_org_member"`
	Role            string    `gorm:"size:20;not null;default:member"`
	SharePercentage *float64
	CreatedAt       time.Time
}

func (Member) TableName() string { return "organization_members" }

// memberRow is the members-joined-with-users projection.
type memberRow struct {
	ID              uuid.UUID
	Role            string
	SharePercentage *float64
	UserID          uuid.UUID
	UserName        string
	UserEmail       string
}

func (m memberRow) toModel() models.OrganizationMemberWithUser {
	return models.OrganizationMemberWithUser{
		ID:              m.ID.String(),
		Role:            m.Role,
		SharePercentage: m.SharePercentage,
		UserID:          m.UserID.String(),
		UserName:        m.UserName,
		UserEmail:       m.UserEmail,
	}
}
