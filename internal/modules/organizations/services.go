package organizations

import (
	"errors"
	"strings"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/Leestalion/quittance/internal/services"
	"github.com/Leestalion/quittance/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("organization member not found")

type OrganizationService struct {
	db *gorm.DB
}

func NewOrganizationService(db *gorm.DB) *OrganizationService {
	return &OrganizationService{db: db}
}

// List returns the organizations the caller belongs to, by name.
func (s *OrganizationService) List(userID uuid.UUID) ([]models.Organization, error) {
	var rows []Organization
	if err := s.db.Scopes(modules.MemberOf(userID)).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]models.Organization, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToModel())
	}
	return out, nil
}

func (s *OrganizationService) Get(userID, id uuid.UUID) (*models.OrganizationWithMembers, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	members, err := s.members(id)
	if err != nil {
		return nil, err
	}
	return &models.OrganizationWithMembers{Organization: row.ToModel(), Members: members}, nil
}

// Create stores the organization and makes the caller its owner in one
// transaction.
func (s *OrganizationService) Create(userID uuid.UUID, req dto.CreateOrganization) (*models.Organization, error) {
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	validation.Required("legal_form", req.LegalForm, v)
	validation.Required("address", req.Address, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	row := Organization{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		LegalForm: strings.TrimSpace(req.LegalForm),
		Siret:     req.Siret,
		Address:   strings.TrimSpace(req.Address),
		Phone:     req.Phone,
		Email:     req.Email,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Create(&Member{
			ID:             uuid.New(),
			OrganizationID: row.ID,
			UserID:         userID,
			Role:           models.MemberRoleOwner,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	o := row.ToModel()
	return &o, nil
}

func (s *OrganizationService) Update(userID, id uuid.UUID, req dto.UpdateOrganization) (*models.Organization, error) {
	row, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		row.Name = strings.TrimSpace(*req.Name)
	}
	if req.LegalForm != nil {
		row.LegalForm = strings.TrimSpace(*req.LegalForm)
	}
	if req.Siret != nil {
		row.Siret = req.Siret
	}
	if req.Address != nil {
		row.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		row.Phone = req.Phone
	}
	if req.Email != nil {
		row.Email = req.Email
	}

	v := validation.Violations{}
	validation.Required("name", row.Name, v)
	validation.Required("legal_form", row.LegalForm, v)
	validation.Required("address", row.Address, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.db.Save(row).Error; err != nil {
		return nil, err
	}

	o := row.ToModel()
	return &o, nil
}

// Delete removes the organization and its memberships.
func (s *OrganizationService) Delete(userID, id uuid.UUID) error {
	if _, err := s.find(userID, id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&Member{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Organization{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return services.ErrNotFound
		}
		return nil
	})
}

func (s *OrganizationService) AddMember(userID, orgID uuid.UUID, req dto.AddOrganizationMember) (*models.OrganizationMemberWithUser, error) {
	if _, err := s.find(userID, orgID); err != nil {
		return nil, err
	}

	memberID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, &modules.BadRequest{Message: "Invalid user ID"}
	}

	role := req.Role
	if role == "" {
		role = models.MemberRoleMember
	}
	if role != models.MemberRoleOwner && role != models.MemberRoleMember {
		return nil, &modules.BadRequest{Message: "Role must be owner or member"}
	}
	if req.SharePercentage != nil {
		v := validation.Violations{}
		validation.RangeFloat("share_percentage", *req.SharePercentage, 0, 100, v)
		if err := v.Err(); err != nil {
			return nil, err
		}
	}

	var account models.Account
	err = s.db.First(&account, "id = ?", memberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &modules.NotFound{Message: "User not found"}
	}
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&Member{}).
		Where("organization_id = ? AND user_id = ?", orgID, memberID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, &modules.BadRequest{Message: "User is already a member"}
	}

	row := Member{
		ID:              uuid.New(),
		OrganizationID:  orgID,
		UserID:          memberID,
		Role:            role,
		SharePercentage: req.SharePercentage,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}

	m := memberRow{
		ID:              row.ID,
		Role:            row.Role,
		SharePercentage: row.SharePercentage,
		UserID:          account.ID,
		UserName:        account.Name,
		UserEmail:       account.Email,
	}.toModel()
	return &m, nil
}

func (s *OrganizationService) ListMembers(userID, orgID uuid.UUID) ([]models.OrganizationMemberWithUser, error) {
	if _, err := s.find(userID, orgID); err != nil {
		return nil, err
	}
	return s.members(orgID)
}

func (s *OrganizationService) RemoveMember(userID, orgID, memberID uuid.UUID) error {
	if _, err := s.find(userID, orgID); err != nil {
		return err
	}

	result := s.db.Where("organization_id = ? AND id = ?", orgID, memberID).Delete(&Member{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// members lists an organization's members, largest share first and
// members without a share last.
func (s *OrganizationService) members(orgID uuid.UUID) ([]models.OrganizationMemberWithUser, error) {
	var rows []memberRow
	err := s.db.Table("organization_members AS om").
		Select("om.id, om.role, om.share_percentage, u.id AS user_id, u.name AS user_name, u.email AS user_email").
		Joins("JOIN users u ON om.user_id = u.id").
		Where("om.organization_id = ?", orgID).
		Order("om.share_percentage IS NULL").
		Order("om.share_percentage DESC").
		Order("u.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.OrganizationMemberWithUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (s *OrganizationService) find(userID, id uuid.UUID) (*Organization, error) {
	var row Organization
	err := s.db.Scopes(modules.MemberOf(userID)).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
