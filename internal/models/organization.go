package models

const (
	MemberRoleOwner  = "owner"
	MemberRoleMember = "member"
)

// Organization is a landlord company (typically a French SCI) whose members
// share ownership of properties.
type Organization struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	LegalForm string  `json:"legal_form"`
	Siret     *string `json:"siret,omitempty"`
	Address   string  `json:"address"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func (o Organization) GetID() string { return o.ID }

type OrganizationMemberWithUser struct {
	ID              string   `json:"id"`
	Role            string   `json:"role"`
	SharePercentage *float64 `json:"share_percentage,omitempty"`
	UserID          string   `json:"user_id"`
	UserName        string   `json:"user_name"`
	UserEmail       string   `json:"user_email"`
}

func (m OrganizationMemberWithUser) GetID() string { return m.ID }

type OrganizationWithMembers struct {
	Organization
	Members []OrganizationMemberWithUser `json:"members"`
}
