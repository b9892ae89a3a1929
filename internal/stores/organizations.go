package stores

import (
	"slices"
	"sync"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
	"github.com/Leestalion/quittance/internal/resource"
)

type OrganizationsAPI interface {
	List(filter string) ([]models.Organization, error)
	Get(id string) (models.OrganizationWithMembers, error)
	Create(payload dto.CreateOrganization) (models.Organization, error)
	Update(id string, patch dto.UpdateOrganization) (models.Organization, error)
	Delete(id string) error
	AddMember(orgID string, member dto.AddOrganizationMember) error
	ListMembers(orgID string) ([]models.OrganizationMemberWithUser, error)
	RemoveMember(orgID, memberID string) error
}

// organizationCollection narrows the detail view to the plain organization so
// the generic store can upsert it.
type organizationCollection struct {
	OrganizationsAPI
}

func (c organizationCollection) Get(id string) (models.Organization, error) {
	org, err := c.OrganizationsAPI.Get(id)
	return org.Organization, err
}

// Organizations keeps the collection plus the organization currently being
// viewed, members included.
type Organizations struct {
	*resource.Store[models.Organization, dto.CreateOrganization, dto.UpdateOrganization]
	remote OrganizationsAPI

	currentMu sync.RWMutex
	current   *models.OrganizationWithMembers
}

func NewOrganizations(remote OrganizationsAPI) *Organizations {
	return &Organizations{
		Store: resource.NewStore[models.Organization, dto.CreateOrganization, dto.UpdateOrganization](
			organizationCollection{remote},
			resource.Names{Singular: "organization", Plural: "organizations"},
		),
		remote: remote,
	}
}

// Current returns a copy of the organization being viewed.
func (o *Organizations) Current() (models.OrganizationWithMembers, bool) {
	o.currentMu.RLock()
	defer o.currentMu.RUnlock()
	if o.current == nil {
		return models.OrganizationWithMembers{}, false
	}
	out := *o.current
	out.Members = slices.Clone(o.current.Members)
	return out, true
}

func (o *Organizations) FetchOrganization(id string) (models.OrganizationWithMembers, error) {
	var org models.OrganizationWithMembers
	err := o.Run("Failed to load organization", func() error {
		got, err := o.remote.Get(id)
		if err != nil {
			return err
		}
		org = got
		o.setCurrent(&got)
		return nil
	})
	return org, err
}

// Update replaces the cached entry and reloads the current projection when
// it is the organization being updated.
func (o *Organizations) Update(id string, patch dto.UpdateOrganization) (models.Organization, error) {
	var org models.Organization
	err := o.Run("Failed to update organization", func() error {
		updated, err := o.remote.Update(id, patch)
		if err != nil {
			return err
		}
		org = updated
		if _, ok := o.Find(id); ok {
			o.Upsert(updated)
		}
		return o.refreshCurrent(id)
	})
	return org, err
}

func (o *Organizations) Delete(id string) error {
	return o.Run("Failed to delete organization", func() error {
		if err := o.remote.Delete(id); err != nil {
			return err
		}
		o.Remove(id)
		o.currentMu.Lock()
		if o.current != nil && o.current.ID == id {
			o.current = nil
		}
		o.currentMu.Unlock()
		return nil
	})
}

func (o *Organizations) AddMember(orgID string, member dto.AddOrganizationMember) error {
	return o.Run("Failed to add member", func() error {
		if err := o.remote.AddMember(orgID, member); err != nil {
			return err
		}
		return o.refreshCurrent(orgID)
	})
}

// RemoveMember deletes the membership remotely and drops it from the current
// projection without a reload.
func (o *Organizations) RemoveMember(orgID, memberID string) error {
	return o.Run("Failed to remove member", func() error {
		if err := o.remote.RemoveMember(orgID, memberID); err != nil {
			return err
		}
		o.currentMu.Lock()
		if o.current != nil && o.current.ID == orgID {
			o.current.Members = slices.DeleteFunc(o.current.Members, func(m models.OrganizationMemberWithUser) bool {
				return m.ID == memberID
			})
		}
		o.currentMu.Unlock()
		return nil
	})
}

// FetchMembers lists the members of an organization and refreshes the
// current projection's members when it is that organization.
func (o *Organizations) FetchMembers(orgID string) ([]models.OrganizationMemberWithUser, error) {
	var members []models.OrganizationMemberWithUser
	err := o.Run("Failed to load members", func() error {
		got, err := o.remote.ListMembers(orgID)
		if err != nil {
			return err
		}
		members = got
		o.currentMu.Lock()
		if o.current != nil && o.current.ID == orgID {
			o.current.Members = slices.Clone(got)
		}
		o.currentMu.Unlock()
		return nil
	})
	return members, err
}

func (o *Organizations) refreshCurrent(id string) error {
	o.currentMu.RLock()
	viewing := o.current != nil && o.current.ID == id
	o.currentMu.RUnlock()
	if !viewing {
		return nil
	}

	got, err := o.remote.Get(id)
	if err != nil {
		return err
	}
	o.setCurrent(&got)
	return nil
}

func (o *Organizations) setCurrent(org *models.OrganizationWithMembers) {
	o.currentMu.Lock()
	o.current = org
	o.currentMu.Unlock()
}
