package stores

import (
	"errors"
	"sync"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
)

var errOffline = errors.New("connection refused")

// collection is an in-memory remote for any entity type.
type collection[T interface{ GetID() string }, C, U any] struct {
	mu      sync.Mutex
	items   []T
	listErr error
	build   func(C) T
	patch   func(T, U) T
}

func (c *collection[T, C, U]) List(string) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listErr != nil {
		return nil, c.listErr
	}
	return append([]T(nil), c.items...), nil
}

func (c *collection[T, C, U]) Get(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.GetID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, notFound()
}

func (c *collection[T, C, U]) Create(payload C) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item := c.build(payload)
	c.items = append(c.items, item)
	return item, nil
}

func (c *collection[T, C, U]) Update(id string, patch U) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.GetID() == id {
			c.items[i] = c.patch(item, patch)
			return c.items[i], nil
		}
	}
	var zero T
	return zero, notFound()
}

func (c *collection[T, C, U]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.GetID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return notFound()
}

type fakeReceipts struct {
	*collection[models.Receipt, dto.CreateReceipt, dto.UpdateReceipt]
	sendErr error
	sent    []string
}

func (f *fakeReceipts) SendEmail(id string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			at := "2026-02-01T10:00:00"
			f.items[i].Status = models.ReceiptStatusSent
			f.items[i].EmailSentAt = &at
			f.sent = append(f.sent, id)
			return nil
		}
	}
	return notFound()
}

type fakeOrganizations struct {
	*collection[models.Organization, dto.CreateOrganization, dto.UpdateOrganization]
	members map[string][]models.OrganizationMemberWithUser
	gets    int
}

func newFakeOrganizations(orgs ...models.Organization) *fakeOrganizations {
	return &fakeOrganizations{
		collection: &collection[models.Organization, dto.CreateOrganization, dto.UpdateOrganization]{
			items: orgs,
			build: func(p dto.CreateOrganization) models.Organization {
				return models.Organization{ID: "org-new", Name: p.Name, LegalForm: p.LegalForm, Address: p.Address}
			},
			patch: func(o models.Organization, p dto.UpdateOrganization) models.Organization {
				if p.Name != nil {
					o.Name = *p.Name
				}
				return o
			},
		},
		members: map[string][]models.OrganizationMemberWithUser{},
	}
}

func (f *fakeOrganizations) Get(id string) (models.OrganizationWithMembers, error) {
	f.gets++
	org, err := f.collection.Get(id)
	if err != nil {
		return models.OrganizationWithMembers{}, err
	}
	return models.OrganizationWithMembers{Organization: org, Members: append([]models.OrganizationMemberWithUser(nil), f.members[id]...)}, nil
}

func (f *fakeOrganizations) AddMember(orgID string, m dto.AddOrganizationMember) error {
	f.members[orgID] = append(f.members[orgID], models.OrganizationMemberWithUser{
		ID:     "m-" + m.UserID,
		Role:   m.Role,
		UserID: m.UserID,
	})
	return nil
}

func (f *fakeOrganizations) ListMembers(orgID string) ([]models.OrganizationMemberWithUser, error) {
	return append([]models.OrganizationMemberWithUser(nil), f.members[orgID]...), nil
}

func (f *fakeOrganizations) RemoveMember(orgID, memberID string) error {
	kept := f.members[orgID][:0]
	for _, m := range f.members[orgID] {
		if m.ID != memberID {
			kept = append(kept, m)
		}
	}
	f.members[orgID] = kept
	return nil
}

type fakeAuth struct {
	resp       dto.AuthResponse
	err        error
	me         models.User
	meErr      error
	meCalls    int
	registered dto.RegisterRequest
}

func (f *fakeAuth) Login(email, password string) (dto.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuth) Register(req dto.RegisterRequest) (dto.AuthResponse, error) {
	f.registered = req
	return f.resp, f.err
}

func (f *fakeAuth) CurrentUser() (models.User, error) {
	f.meCalls++
	return f.me, f.meErr
}
