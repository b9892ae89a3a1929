package models

const (
	ReceiptStatusGenerated = "generated"
	ReceiptStatusSent      = "sent"
)

// Receipt is a monthly rent receipt (quittance de loyer) issued for a lease.
type Receipt struct {
	ID          string  `json:"id"`
	LeaseID     string  `json:"lease_id"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	BaseRent    Money   `json:"base_rent"`
	Charges     Money   `json:"charges"`
	TotalAmount Money   `json:"total_amount"`
	PaymentDate string  `json:"payment_date"`
	Status      string  `json:"status"`
	EmailSentAt *string `json:"email_sent_at,omitempty"`
	PDFPath     *string `json:"pdf_path,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (r Receipt) GetID() string { return r.ID }

// IsPending reports whether the receipt was generated but never e-mailed.
func (r Receipt) IsPending() bool {
	return r.Status == ReceiptStatusGenerated && (r.EmailSentAt == nil || *r.EmailSentAt == "")
}
