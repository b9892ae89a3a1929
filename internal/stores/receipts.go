package stores

import (
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
	"github.com/Leestalion/quittance/internal/resource"
)

type ReceiptsAPI interface {
	resource.API[models.Receipt, dto.CreateReceipt, dto.UpdateReceipt]
	SendEmail(id string) error
}

type Receipts struct {
	*resource.Store[models.Receipt, dto.CreateReceipt, dto.UpdateReceipt]
	remote ReceiptsAPI
}

func NewReceipts(remote ReceiptsAPI) *Receipts {
	return &Receipts{
		Store:  resource.NewStore[models.Receipt, dto.CreateReceipt, dto.UpdateReceipt](remote, resource.Names{Singular: "receipt", Plural: "receipts"}),
		remote: remote,
	}
}

// SendReceipt triggers the e-mail dispatch, then reloads the receipt so the
// cached copy carries the server's email_sent_at.
func (r *Receipts) SendReceipt(id string) (models.Receipt, error) {
	var receipt models.Receipt
	err := r.Run("Failed to send receipt", func() error {
		if err := r.remote.SendEmail(id); err != nil {
			return err
		}
		got, err := r.remote.Get(id)
		if err != nil {
			return err
		}
		receipt = got
		r.Upsert(got)
		return nil
	})
	return receipt, err
}

func (r *Receipts) ByLease(leaseID string) []models.Receipt {
	return r.Filter(func(receipt models.Receipt) bool {
		return receipt.LeaseID == leaseID
	})
}

// Pending lists receipts that were generated but not yet e-mailed.
func (r *Receipts) Pending() []models.Receipt {
	return r.Filter(models.Receipt.IsPending)
}
