package api

import (
	"net/url"

	"github.com/Leestalion/quittance/internal/client"
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
)

type (
	Properties = Resource[models.Property, dto.CreateProperty, dto.UpdateProperty]
	Tenants    = Resource[models.Tenant, dto.CreateTenant, dto.UpdateTenant]
	Leases     = Resource[models.Lease, dto.CreateLease, dto.UpdateLease]
)

func NewProperties(c *client.Client) *Properties {
	return NewResource[models.Property, dto.CreateProperty, dto.UpdateProperty](c, "/properties", "")
}

func NewTenants(c *client.Client) *Tenants {
	return NewResource[models.Tenant, dto.CreateTenant, dto.UpdateTenant](c, "/tenants", "")
}

// NewLeases lists leases optionally filtered by property_id.
func NewLeases(c *client.Client) *Leases {
	return NewResource[models.Lease, dto.CreateLease, dto.UpdateLease](c, "/leases", "property_id")
}

// Receipts lists receipts optionally filtered by lease_id and can trigger the
// e-mail dispatch of a receipt.
type Receipts struct {
	*Resource[models.Receipt, dto.CreateReceipt, dto.UpdateReceipt]
}

func NewReceipts(c *client.Client) *Receipts {
	return &Receipts{
		Resource: NewResource[models.Receipt, dto.CreateReceipt, dto.UpdateReceipt](c, "/receipts", "lease_id"),
	}
}

// SendEmail asks the server to e-mail the receipt to the tenant.
func (r *Receipts) SendEmail(id string) error {
	return r.c.Post(r.itemPath(id)+"/send", nil, nil)
}

// Organizations returns the member-enriched view on Get and exposes the
// members sub-resource.
type Organizations struct {
	res *Resource[models.Organization, dto.CreateOrganization, dto.UpdateOrganization]
}

func NewOrganizations(c *client.Client) *Organizations {
	return &Organizations{
		res: NewResource[models.Organization, dto.CreateOrganization, dto.UpdateOrganization](c, "/organizations", ""),
	}
}

func (o *Organizations) List(filter string) ([]models.Organization, error) {
	return o.res.List(filter)
}

func (o *Organizations) Get(id string) (models.OrganizationWithMembers, error) {
	var out models.OrganizationWithMembers
	err := o.res.c.Get(o.res.itemPath(id), nil, &out)
	return out, err
}

func (o *Organizations) Create(payload dto.CreateOrganization) (models.Organization, error) {
	return o.res.Create(payload)
}

func (o *Organizations) Update(id string, patch dto.UpdateOrganization) (models.Organization, error) {
	return o.res.Update(id, patch)
}

func (o *Organizations) Delete(id string) error {
	return o.res.Delete(id)
}

func (o *Organizations) AddMember(orgID string, member dto.AddOrganizationMember) error {
	return o.res.c.Post(o.membersPath(orgID), member, nil)
}

func (o *Organizations) ListMembers(orgID string) ([]models.OrganizationMemberWithUser, error) {
	var members []models.OrganizationMemberWithUser
	if err := o.res.c.Get(o.membersPath(orgID), nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (o *Organizations) RemoveMember(orgID, memberID string) error {
	return o.res.c.Delete(o.membersPath(orgID) + "/" + url.PathEscape(memberID))
}

func (o *Organizations) membersPath(orgID string) string {
	return o.res.itemPath(orgID) + "/members"
}
