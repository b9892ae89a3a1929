package dto

import "github.com/Leestalion/quittance/internal/models"

// Create payloads carry only the fields a client may set; ids and
// timestamps are assigned by the server. Update payloads are partial.

type CreateProperty struct {
	OrganizationID *string  `json:"organization_id,omitempty"`
	Address        string   `json:"address"`
	PropertyType   string   `json:"property_type"`
	Furnished      bool     `json:"furnished"`
	SurfaceArea    *float64 `json:"surface_area,omitempty"`
	Rooms          *int     `json:"rooms,omitempty"`
	MaxOccupants   int      `json:"max_occupants"`
	Description    *string  `json:"description,omitempty"`
}

type UpdateProperty struct {
	OrganizationID *string  `json:"organization_id,omitempty"`
	Address        *string  `json:"address,omitempty"`
	PropertyType   *string  `json:"property_type,omitempty"`
	Furnished      *bool    `json:"furnished,omitempty"`
	SurfaceArea    *float64 `json:"surface_area,omitempty"`
	Rooms          *int     `json:"rooms,omitempty"`
	MaxOccupants   *int     `json:"max_occupants,omitempty"`
	Description    *string  `json:"description,omitempty"`
}

type CreateTenant struct {
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	BirthDate  *string `json:"birth_date,omitempty"`
	BirthPlace *string `json:"birth_place,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type UpdateTenant struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	BirthDate  *string `json:"birth_date,omitempty"`
	BirthPlace *string `json:"birth_place,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type CreateLease struct {
	PropertyID     string       `json:"property_id"`
	TenantID       string       `json:"tenant_id"`
	StartDate      string       `json:"start_date"`
	DurationMonths int          `json:"duration_months"`
	MonthlyRent    models.Money `json:"monthly_rent"`
	Charges        models.Money `json:"charges"`
	Deposit        models.Money `json:"deposit"`
	RentRevision   bool         `json:"rent_revision"`
	InventoryDate  *string      `json:"inventory_date,omitempty"`
}

type UpdateLease struct {
	TenantID       *string       `json:"tenant_id,omitempty"`
	StartDate      *string       `json:"start_date,omitempty"`
	DurationMonths *int          `json:"duration_months,omitempty"`
	MonthlyRent    *models.Money `json:"monthly_rent,omitempty"`
	Charges        *models.Money `json:"charges,omitempty"`
	Deposit        *models.Money `json:"deposit,omitempty"`
	RentRevision   *bool         `json:"rent_revision,omitempty"`
	InventoryDate  *string       `json:"inventory_date,omitempty"`
	Status         *string       `json:"status,omitempty"`
}

type CreateReceipt struct {
	LeaseID     string       `json:"lease_id"`
	PeriodMonth int          `json:"period_month"`
	PeriodYear  int          `json:"period_year"`
	BaseRent    models.Money `json:"base_rent"`
	Charges     models.Money `json:"charges"`
	PaymentDate string       `json:"payment_date"`
}

type UpdateReceipt struct {
	Status      *string `json:"status,omitempty"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

type CreateOrganization struct {
	Name      string  `json:"name"`
	LegalForm string  `json:"legal_form"`
	Siret     *string `json:"siret,omitempty"`
	Address   string  `json:"address"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

type UpdateOrganization struct {
	Name      *string `json:"name,omitempty"`
	LegalForm *string `json:"legal_form,omitempty"`
	Siret     *string `json:"siret,omitempty"`
	Address   *string `json:"address,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

type AddOrganizationMember struct {
	UserID          string   `json:"user_id"`
	Role            string   `json:"role"`
	SharePercentage *float64 `json:"share_percentage,omitempty"`
}
