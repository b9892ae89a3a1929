package properties

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

type PropertyService struct {
	db *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

func (s *PropertyService) List(userID uuid.UUID) ([]models.Property, error) {
	var rows []Property
	err := s.db.Scopes(modules.OwnedBy(userID)).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.Property, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToModel())
	}
	return out, nil
}

func (s *PropertyService) Get(userID, id uuid.UUID) (*models.Property, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	p := row.ToModel()
	return &p, nil
}

func (s *PropertyService) Create(userID uuid.UUID, req dto.CreateProperty) (*models.Property, error) {
	v := validation.Violations{}
	validation.Required("address", req.Address, v)
	validation.Required("property_type", req.PropertyType, v)
	if req.MaxOccupants < 0 {
		v["max_occupants"] = "must_not_be_negative"
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	orgID, err := modules.ParseOptionalID(req.OrganizationID)
	if err != nil {
		return nil, &modules.BadRequest{Message: "Invalid organization ID"}
	}

	maxOccupants := req.MaxOccupants
	if maxOccupants == 0 {
		maxOccupants = 1
	}

	row := Property{
		ID:             uuid.New(),
		UserID:         userID,
		OrganizationID: orgID,
		Address:        req.Address,
		PropertyType:   req.PropertyType,
		Furnished:      req.Furnished,
		SurfaceArea:    req.SurfaceArea,
		Rooms:          req.Rooms,
		MaxOccupants:   maxOccupants,
		Description:    req.Description,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}

	p := row.ToModel()
	return &p, nil
}

func (s *PropertyService) Update(userID, id uuid.UUID, req dto.UpdateProperty) (*models.Property, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}

	if req.OrganizationID != nil {
		orgID, err := modules.ParseOptionalID(req.OrganizationID)
		if err != nil {
			return nil, &modules.BadRequest{Message: "Invalid organization ID"}
		}
		row.OrganizationID = orgID
	}
	if req.Address != nil {
		row.Address = *req.Address
	}
	if req.PropertyType != nil {
		row.PropertyType = *req.PropertyType
	}
	if req.Furnished != nil {
		row.Furnished = *req.Furnished
	}
	if req.SurfaceArea != nil {
		row.SurfaceArea = req.SurfaceArea
	}
	if req.Rooms != nil {
		row.Rooms = req.Rooms
	}
	if req.MaxOccupants != nil {
		row.MaxOccupants = *req.MaxOccupants
	}
	if req.Description != nil {
		row.Description = req.Description
	}

	v := validation.Violations{}
	validation.Required("address", row.Address, v)
	validation.Required("property_type", row.PropertyType, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.db.Save(row).Error; err != nil {
		return nil, err
	}

	p := row.ToModel()
	return &p, nil
}

// Delete removes the property along with its leases and their receipts.
func (s *PropertyService) Delete(userID, id uuid.UUID) error {
	if _, err := s.find(userID, id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := modules.DeleteLeases(tx, "property_id", id); err != nil {
			return err
		}
		return tx.Delete(&Property{}, "id = ?", id).Error
	})
}

func (s *PropertyService) find(userID, id uuid.UUID) (*Property, error) {
	var row Property
	err := s.db.Scopes(modules.OwnedBy(userID)).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
