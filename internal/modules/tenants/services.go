package tenants

import (
	"errors"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/Leestalion/quittance/internal/services"
	"github.com/Leestalion/quittance/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantService struct {
	db *gorm.DB
}

func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{db: db}
}

func (s *TenantService) List(userID uuid.UUID) ([]models.Tenant, error) {
	var rows []Tenant
	if err := s.db.Scopes(modules.OwnedBy(userID)).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]models.Tenant, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToModel())
	}
	return out, nil
}

func (s *TenantService) Get(userID, id uuid.UUID) (*models.Tenant, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	t := row.ToModel()
	return &t, nil
}

func (s *TenantService) Create(userID uuid.UUID, req dto.CreateTenant) (*models.Tenant, error) {
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	if req.Email != nil && *req.Email != "" {
		validation.Email("email", *req.Email, v)
	}
	validation.OptionalDate("birth_date", req.BirthDate, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	row := Tenant{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		BirthDate:  req.BirthDate,
		BirthPlace: req.BirthPlace,
		Notes:      req.Notes,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}

	t := row.ToModel()
	return &t, nil
}

func (s *TenantService) Update(userID, id uuid.UUID, req dto.UpdateTenant) (*models.Tenant, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		row.Name = *req.Name
	}
	if req.Email != nil {
		row.Email = req.Email
	}
	if req.Phone != nil {
		row.Phone = req.Phone
	}
	if req.Address != nil {
		row.Address = req.Address
	}
	if req.BirthDate != nil {
		row.BirthDate = req.BirthDate
	}
	if req.BirthPlace != nil {
		row.BirthPlace = req.BirthPlace
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	v := validation.Violations{}
	validation.Required("name", row.Name, v)
	validation.OptionalDate("birth_date", row.BirthDate, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.db.Save(row).Error; err != nil {
		return nil, err
	}

	t := row.ToModel()
	return &t, nil
}

// Delete removes the tenant along with its leases and their receipts.
func (s *TenantService) Delete(userID, id uuid.UUID) error {
	if _, err := s.find(userID, id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := modules.DeleteLeases(tx, "tenant_id", id); err != nil {
			return err
		}
		return tx.Delete(&Tenant{}, "id = ?", id).Error
	})
}

func (s *TenantService) find(userID, id uuid.UUID) (*Tenant, error) {
	var row Tenant
	err := s.db.Scopes(modules.OwnedBy(userID)).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
