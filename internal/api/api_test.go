package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leestalion/quittance/internal/client"
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/models"
)

type recorded struct {
	method string
	path   string
	query  string
	body   map[string]any
}

func newServer(t *testing.T, status int, response string) (*client.Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &rec.body)
		}
		calls = append(calls, rec)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return client.New(srv.URL, nil), &calls
}

func TestLeases_ListWithFilter(t *testing.T) {
	c, calls := newServer(t, http.StatusOK, `[{"id":"l1","property_id":"p1","monthly_rent":1000,"status":"active"}]`)

	leases, err := NewLeases(c).List("p1")

	require.NoError(t, err)
	require.Len(t, leases, 1)
	assert.Equal(t, models.Euros(1000), leases[0].MonthlyRent)
	assert.Equal(t, "/leases", (*calls)[0].path)
	assert.Equal(t, "property_id=p1", (*calls)[0].query)
}

func TestResource_ListWithoutFilterSendsNoQuery(t *testing.T) {
	c, calls := newServer(t, http.StatusOK, `[]`)

	receipts, err := NewReceipts(c).List("")

	require.NoError(t, err)
	assert.Empty(t, receipts)
	assert.NotNil(t, receipts)
	assert.Equal(t, "", (*calls)[0].query)
}

func TestResource_ListRejectsNonArray(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `"TODO"`)

	_, err := NewProperties(c).List("")

	assert.ErrorIs(t, err, ErrNotArray)
}

func TestResource_CRUDPaths(t *testing.T) {
	c, calls := newServer(t, http.StatusOK, `{"id":"t1","name":"Bob"}`)
	tenants := NewTenants(c)

	_, err := tenants.Get("t1")
	require.NoError(t, err)
	_, err = tenants.Create(dto.CreateTenant{Name: "Bob"})
	require.NoError(t, err)
	name := "Robert"
	_, err = tenants.Update("t1", dto.UpdateTenant{Name: &name})
	require.NoError(t, err)
	require.NoError(t, tenants.Delete("t1"))

	require.Len(t, *calls, 4)
	assert.Equal(t, recorded{method: "GET", path: "/tenants/t1"}, (*calls)[0])
	assert.Equal(t, "POST", (*calls)[1].method)
	assert.Equal(t, "/tenants", (*calls)[1].path)
	assert.Equal(t, "Bob", (*calls)[1].body["name"])
	assert.Equal(t, "PUT", (*calls)[2].method)
	assert.Equal(t, map[string]any{"name": "Robert"}, (*calls)[2].body)
	assert.Equal(t, "DELETE", (*calls)[3].method)
}

func TestResource_GetNotFound(t *testing.T) {
	c, _ := newServer(t, http.StatusNotFound, `{"error":true,"message":"Tenant not found"}`)

	_, err := NewTenants(c).Get("missing")

	assert.True(t, client.IsNotFound(err))
}

func TestReceipts_SendEmail(t *testing.T) {
	c, calls := newServer(t, http.StatusOK, `{"message":"sent"}`)

	require.NoError(t, NewReceipts(c).SendEmail("r1"))
	assert.Equal(t, "POST", (*calls)[0].method)
	assert.Equal(t, "/receipts/r1/send", (*calls)[0].path)
	assert.Nil(t, (*calls)[0].body)
}

func TestOrganizations_Members(t *testing.T) {
	c, calls := newServer(t, http.StatusOK, `[{"id":"m1","role":"owner","user_id":"u1","user_name":"Ann","user_email":"ann@example.com"}]`)
	orgs := NewOrganizations(c)

	members, err := orgs.ListMembers("o1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Ann", members[0].UserName)

	require.NoError(t, orgs.AddMember("o1", dto.AddOrganizationMember{UserID: "u2", Role: models.MemberRoleMember}))
	require.NoError(t, orgs.RemoveMember("o1", "m1"))

	assert.Equal(t, "/organizations/o1/members", (*calls)[0].path)
	assert.Equal(t, "POST", (*calls)[1].method)
	assert.Equal(t, "u2", (*calls)[1].body["user_id"])
	assert.Equal(t, "DELETE", (*calls)[2].method)
	assert.Equal(t, "/organizations/o1/members/m1", (*calls)[2].path)
}

func TestAuth_Login(t *testing.T) {
	c, calls := newServer(t, http.StatusOK, `{"token":"jwt","user":{"id":"u1","email":"a@b.fr","name":"A","address":"1 rue"}}`)

	resp, err := NewAuth(c).Login("a@b.fr", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "/auth/login", (*calls)[0].path)
	assert.Equal(t, "secret123", (*calls)[0].body["password"])
}
