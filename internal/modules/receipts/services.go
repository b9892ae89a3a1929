package receipts

import (
	"errors"
	"fmt"
	"time"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/metrics"
	"github.com/Leestalion/quittance/internal/models"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/Leestalion/quittance/internal/services"
	"github.com/Leestalion/quittance/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceiptService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewReceiptService(db *gorm.DB, m *metrics.Metrics) *ReceiptService {
	return &ReceiptService{db: db, metrics: m, now: time.Now}
}

// List returns the caller's receipts, latest period first, optionally for
// one lease.
func (s *ReceiptService) List(userID uuid.UUID, leaseID *uuid.UUID) ([]models.Receipt, error) {
	q := s.db.Scopes(modules.LeaseOwnedBy(userID))
	if leaseID != nil {
		q = q.Where("lease_id = ?", *leaseID)
	}

	var rows []Receipt
	if err := q.Order("period_year DESC").Order("period_month DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]models.Receipt, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToModel())
	}
	return out, nil
}

func (s *ReceiptService) Get(userID, id uuid.UUID) (*models.Receipt, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	r := row.ToModel()
	return &r, nil
}

// Create issues the receipt of one lease for one month. The total is always
// computed here, never taken from the caller.
func (s *ReceiptService) Create(userID uuid.UUID, req dto.CreateReceipt) (*models.Receipt, error) {
	if req.PeriodMonth < 1 || req.PeriodMonth > 12 {
		return nil, &modules.BadRequest{Message: "Period month must be between 1 and 12"}
	}
	if req.BaseRent < 0 || req.Charges < 0 {
		return nil, &modules.BadRequest{Message: "Rent amounts cannot be negative"}
	}
	if req.BaseRent > models.MaxMoney || req.Charges > models.MaxMoney {
		return nil, &modules.BadRequest{Message: "Rent amounts are too large"}
	}

	v := validation.Violations{}
	validation.PositiveInt("period_year", req.PeriodYear, v)
	validation.Date("payment_date", req.PaymentDate, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	leaseID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		return nil, &modules.BadRequest{Message: "Invalid lease ID"}
	}

	var leases int64
	err = s.db.Table("leases").
		Where("id = ?", leaseID).
		Where("property_id IN (?)", s.db.Table("properties").Select("id").Where("user_id = ?", userID)).
		Count(&leases).Error
	if err != nil {
		return nil, err
	}
	if leases == 0 {
		return nil, &modules.NotFound{Message: "Lease not found"}
	}

	var existing int64
	err = s.db.Model(&Receipt{}).
		Where("lease_id = ? AND period_month = ? AND period_year = ?", leaseID, req.PeriodMonth, req.PeriodYear).
		Count(&existing).Error
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, &modules.BadRequest{
			Message: fmt.Sprintf("Receipt already exists for %d/%d", req.PeriodMonth, req.PeriodYear),
		}
	}

	row := Receipt{
		ID:          uuid.New(),
		LeaseID:     leaseID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		BaseRent:    req.BaseRent.Cents(),
		Charges:     req.Charges.Cents(),
		TotalAmount: req.BaseRent.Cents() + req.Charges.Cents(),
		PaymentDate: req.PaymentDate,
		Status:      models.ReceiptStatusGenerated,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	s.metrics.ReceiptsGenerated.Inc()

	r := row.ToModel()
	return &r, nil
}

func (s *ReceiptService) Update(userID, id uuid.UUID, req dto.UpdateReceipt) (*models.Receipt, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch *req.Status {
		case models.ReceiptStatusGenerated, models.ReceiptStatusSent:
			row.Status = *req.Status
		default:
			return nil, &modules.BadRequest{Message: "Unknown receipt status"}
		}
	}
	if req.PaymentDate != nil {
		v := validation.Violations{}
		validation.Date("payment_date", *req.PaymentDate, v)
		if err := v.Err(); err != nil {
			return nil, err
		}
		row.PaymentDate = *req.PaymentDate
	}

	if err := s.db.Save(row).Error; err != nil {
		return nil, err
	}

	r := row.ToModel()
	return &r, nil
}

func (s *ReceiptService) Delete(userID, id uuid.UUID) error {
	result := s.db.Scopes(modules.LeaseOwnedBy(userID)).Delete(&Receipt{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}

// Send records the e-mail dispatch of a receipt. Delivery itself is out of
// this service's hands.
func (s *ReceiptService) Send(userID, id uuid.UUID) (*models.Receipt, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}

	sentAt := s.now().UTC()
	row.Status = models.ReceiptStatusSent
	row.EmailSentAt = &sentAt
	if err := s.db.Save(row).Error; err != nil {
		return nil, err
	}
	s.metrics.ReceiptsSent.Inc()

	r := row.ToModel()
	return &r, nil
}

func (s *ReceiptService) find(userID, id uuid.UUID) (*Receipt, error) {
	var row Receipt
	err := s.db.Scopes(modules.LeaseOwnedBy(userID)).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
