package models

// LeaseStatusActive is the only lease status the client gives meaning to.
const LeaseStatusActive = "active"

// Statuses a lease can be moved to once it stops running.
const (
	LeaseStatusEnded      = "ended"
	LeaseStatusTerminated = "terminated"
)

type Lease struct {
	ID             string  `json:"id"`
	PropertyID     string  `json:"property_id"`
	TenantID       string  `json:"tenant_id"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	DurationMonths int     `json:"duration_months"`
	MonthlyRent    Money   `json:"monthly_rent"`
	Charges        Money   `json:"charges"`
	Deposit        Money   `json:"deposit"`
	RentRevision   bool    `json:"rent_revision"`
	InventoryDate  *string `json:"inventory_date,omitempty"`
	Status         string  `json:"status"`
	PDFPath        *string `json:"pdf_path,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func (l Lease) GetID() string { return l.ID }

func (l Lease) IsActive() bool { return l.Status == LeaseStatusActive }
