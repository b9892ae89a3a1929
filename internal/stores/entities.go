// Package stores instantiates the resource-store protocol for every entity
// the application manages and adds the per-entity derived queries.
package stores

import (
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
	"github.com/Leestalion/quittance/internal/resource"
)

type (
	PropertiesAPI = resource.API[models.Property, dto.CreateProperty, dto.UpdateProperty]
	TenantsAPI    = resource.API[models.Tenant, dto.CreateTenant, dto.UpdateTenant]
	LeasesAPI     = resource.API[models.Lease, dto.CreateLease, dto.UpdateLease]
)

// Properties swallows list failures: the collection is emptied and the
// caller gets an empty result instead of an error.
type Properties struct {
	*resource.Store[models.Property, dto.CreateProperty, dto.UpdateProperty]
}

func NewProperties(remote PropertiesAPI) *Properties {
	return &Properties{
		Store: resource.NewStore(remote, resource.Names{Singular: "property", Plural: "properties"}, resource.ResetOnListError()),
	}
}

func (p *Properties) ByID(id string) (models.Property, bool) {
	return p.Find(id)
}

type Tenants struct {
	*resource.Store[models.Tenant, dto.CreateTenant, dto.UpdateTenant]
}

func NewTenants(remote TenantsAPI) *Tenants {
	return &Tenants{
		Store: resource.NewStore(remote, resource.Names{Singular: "tenant", Plural: "tenants"}),
	}
}

func (t *Tenants) ByID(id string) (models.Tenant, bool) {
	return t.Find(id)
}

type Leases struct {
	*resource.Store[models.Lease, dto.CreateLease, dto.UpdateLease]
}

func NewLeases(remote LeasesAPI) *Leases {
	return &Leases{
		Store: resource.NewStore(remote, resource.Names{Singular: "lease", Plural: "leases"}),
	}
}

// ActiveLease returns the first cached lease of the property whose status is
// active.
func (l *Leases) ActiveLease(propertyID string) (models.Lease, bool) {
	for _, lease := range l.Items() {
		if lease.PropertyID == propertyID && lease.IsActive() {
			return lease, true
		}
	}
	return models.Lease{}, false
}

func (l *Leases) ByProperty(propertyID string) []models.Lease {
	return l.Filter(func(lease models.Lease) bool {
		return lease.PropertyID == propertyID
	})
}
