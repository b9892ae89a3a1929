package leases

import (
	"errors"
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

type LeaseService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

func NewLeaseService(db *gorm.DB, m *metrics.Metrics) *LeaseService {
	return &LeaseService{db: db, metrics: m}
}

// List returns the caller's leases, newest start first, optionally for one
// property.
func (s *LeaseService) List(userID uuid.UUID, propertyID *uuid.UUID) ([]models.Lease, error) {
	q := s.db.Scopes(modules.PropertyOwnedBy(userID))
	if propertyID != nil {
		q = q.Where("property_id = ?", *propertyID)
	}

	var rows []Lease
	if err := q.Order("start_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]models.Lease, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToModel())
	}
	return out, nil
}

func (s *LeaseService) Get(userID, id uuid.UUID) (*models.Lease, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	l := row.ToModel()
	return &l, nil
}

// Create starts an active lease whose end date is derived from the start
// date and duration.
func (s *LeaseService) Create(userID uuid.UUID, req dto.CreateLease) (*models.Lease, error) {
	v := validation.Violations{}
	validation.Date("start_date", req.StartDate, v)
	validation.PositiveInt("duration_months", req.DurationMonths, v)
	validation.NonNegative("monthly_rent", req.MonthlyRent.Cents(), v)
	validation.NonNegative("charges", req.Charges.Cents(), v)
	validation.NonNegative("deposit", req.Deposit.Cents(), v)
	validation.OptionalDate("inventory_date", req.InventoryDate, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, &modules.BadRequest{Message: "Invalid property ID"}
	}
	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, &modules.BadRequest{Message: "Invalid tenant ID"}
	}
	if err := s.checkOwnership(userID, propertyID, tenantID); err != nil {
		return nil, err
	}

	end, err := EndDate(req.StartDate, req.DurationMonths)
	if err != nil {
		return nil, err
	}

	row := Lease{
		ID:             uuid.New(),
		PropertyID:     propertyID,
		TenantID:       tenantID,
		StartDate:      req.StartDate,
		EndDate:        &end,
		DurationMonths: req.DurationMonths,
		MonthlyRent:    req.MonthlyRent.Cents(),
		Charges:        req.Charges.Cents(),
		Deposit:        req.Deposit.Cents(),
		RentRevision:   req.RentRevision,
		InventoryDate:  req.InventoryDate,
		Status:         models.LeaseStatusActive,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	s.metrics.LeasesCreated.Inc()

	l := row.ToModel()
	return &l, nil
}

func (s *LeaseService) Update(userID, id uuid.UUID, req dto.UpdateLease) (*models.Lease, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}

	if req.TenantID != nil {
		tenantID, err := uuid.Parse(*req.TenantID)
		if err != nil {
			return nil, &modules.BadRequest{Message: "Invalid tenant ID"}
		}
		if err := s.checkOwnership(userID, row.PropertyID, tenantID); err != nil {
			return nil, err
		}
		row.TenantID = tenantID
	}
	if req.StartDate != nil {
		row.StartDate = *req.StartDate
	}
	if req.DurationMonths != nil {
		row.DurationMonths = *req.DurationMonths
	}
	if req.MonthlyRent != nil {
		row.MonthlyRent = req.MonthlyRent.Cents()
	}
	if req.Charges != nil {
		row.Charges = req.Charges.Cents()
	}
	if req.Deposit != nil {
		row.Deposit = req.Deposit.Cents()
	}
	if req.RentRevision != nil {
		row.RentRevision = *req.RentRevision
	}
	if req.InventoryDate != nil {
		row.InventoryDate = req.InventoryDate
	}
	if req.Status != nil {
		switch *req.Status {
		case models.LeaseStatusActive, models.LeaseStatusEnded, models.LeaseStatusTerminated:
			row.Status = *req.Status
		default:
			return nil, &modules.BadRequest{Message: "Unknown lease status"}
		}
	}

	v := validation.Violations{}
	validation.Date("start_date", row.StartDate, v)
	validation.PositiveInt("duration_months", row.DurationMonths, v)
	validation.NonNegative("monthly_rent", row.MonthlyRent, v)
	validation.NonNegative("charges", row.Charges, v)
	validation.NonNegative("deposit", row.Deposit, v)
	validation.OptionalDate("inventory_date", row.InventoryDate, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if req.StartDate != nil || req.DurationMonths != nil {
		end, err := EndDate(row.StartDate, row.DurationMonths)
		if err != nil {
			return nil, err
		}
		row.EndDate = &end
	}

	if err := s.db.Save(row).Error; err != nil {
		return nil, err
	}

	l := row.ToModel()
	return &l, nil
}

// Delete removes the lease and its receipts.
func (s *LeaseService) Delete(userID, id uuid.UUID) error {
	if _, err := s.find(userID, id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return modules.DeleteLeases(tx, "id", id)
	})
}

func (s *LeaseService) find(userID, id uuid.UUID) (*Lease, error) {
	var row Lease
	err := s.db.Scopes(modules.PropertyOwnedBy(userID)).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *LeaseService) checkOwnership(userID, propertyID, tenantID uuid.UUID) error {
	ok, err := modules.Owns(s.db, "properties", propertyID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return &modules.NotFound{Message: "Property not found"}
	}

	ok, err = modules.Owns(s.db, "tenants", tenantID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return &modules.NotFound{Message: "Tenant not found"}
	}
	return nil
}

// EndDate adds months to a YYYY-MM-DD start date, clamping to the last day
// of the target month (2026-01-31 + 1 month is 2026-02-28).
func EndDate(start string, months int) (string, error) {
	t, err := validation.ParseDate(start)
	if err != nil {
		return "", &modules.BadRequest{Message: "Invalid start date"}
	}

	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	end := time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
	return validation.FormatDate(end), nil
}
