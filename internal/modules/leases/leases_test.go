package leases

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Leestalion/quittance/internal/config"
	"github.com/Leestalion/quittance/internal/database"
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/metrics"
	"github.com/Leestalion/quittance/internal/models"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/Leestalion/quittance/internal/modules/properties"
	"github.com/Leestalion/quittance/internal/modules/tenants"
	"github.com/Leestalion/quittance/internal/validation"
)

func TestEndDate(t *testing.T) {
	tests := []struct {
		start  string
		months int
		want   string
	}{
		{"2026-01-15", 12, "2027-01-15"},
		{"2026-01-31", 1, "2026-02-28"},
		{"2028-01-31", 1, "2028-02-29"},
		{"2026-08-31", 3, "2026-11-30"},
		{"2026-12-01", 36, "2029-12-01"},
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got, err := EndDate(tt.start, tt.months)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := EndDate("31/01/2026", 1)
	var bad *modules.BadRequest
	assert.ErrorAs(t, err, &bad)
}

type fixture struct {
	svc      *LeaseService
	metrics  *metrics.Metrics
	owner    uuid.UUID
	property string
	tenant   string
}

func setup(t *testing.T) fixture {
	t.Helper()

	db, err := database.Open(&config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "leases.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.MigrateShared(db))
	require.NoError(t, database.MigrateModels(db, append(properties.New().Models(), append(tenants.New().Models(), New(nil).Models()...)...)))

	owner := seedAccount(t, db, "owner@example.com")
	prop, err := properties.NewPropertyService(db).Create(owner, dto.CreateProperty{Address: "5 rue Mouffetard", PropertyType: "studio"})
	require.NoError(t, err)
	tenant, err := tenants.NewTenantService(db).Create(owner, dto.CreateTenant{Name: "Hugo"})
	require.NoError(t, err)

	m := metrics.New()
	return fixture{svc: NewLeaseService(db, m), metrics: m, owner: owner, property: prop.ID, tenant: tenant.ID}
}

func seedAccount(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	acc := models.Account{ID: uuid.New(), Email: email, Password: "x", Name: email, Address: "-"}
	require.NoError(t, db.Create(&acc).Error)
	return acc.ID
}

func (f fixture) create(t *testing.T, start string) *models.Lease {
	t.Helper()
	lease, err := f.svc.Create(f.owner, dto.CreateLease{
		PropertyID: f.property, TenantID: f.tenant, StartDate: start, DurationMonths: 12,
		MonthlyRent: models.Euros(650), Charges: models.Euros(30), Deposit: models.Euros(650),
	})
	require.NoError(t, err)
	return lease
}

func TestLeaseService_Create(t *testing.T) {
	f := setup(t)
	lease := f.create(t, "2026-04-01")

	assert.Equal(t, models.LeaseStatusActive, lease.Status)
	require.NotNil(t, lease.EndDate)
	assert.Equal(t, "2027-04-01", *lease.EndDate)
	assert.Equal(t, models.Euros(650), lease.MonthlyRent)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.LeasesCreated))
}

func TestLeaseService_CreateRejectsForeignTenant(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Create(f.owner, dto.CreateLease{
		PropertyID: f.property, TenantID: uuid.NewString(), StartDate: "2026-04-01", DurationMonths: 12,
	})
	var missing *modules.NotFound
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Tenant not found", missing.Message)
}

func TestLeaseService_ListNewestFirstAndFiltered(t *testing.T) {
	f := setup(t)
	f.create(t, "2025-01-01")
	f.create(t, "2026-01-01")

	all, err := f.svc.List(f.owner, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2026-01-01", all[0].StartDate)

	other := uuid.New()
	filtered, err := f.svc.List(f.owner, &other)
	require.NoError(t, err)
	assert.Empty(t, filtered)

	stranger, err := f.svc.List(uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, stranger)
}

func TestLeaseService_UpdateRecomputesEndDate(t *testing.T) {
	f := setup(t)
	lease := f.create(t, "2026-01-31")
	id := uuid.MustParse(lease.ID)

	months := 1
	updated, err := f.svc.Update(f.owner, id, dto.UpdateLease{DurationMonths: &months})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", *updated.EndDate)

	ended := models.LeaseStatusEnded
	updated, err = f.svc.Update(f.owner, id, dto.UpdateLease{Status: &ended})
	require.NoError(t, err)
	assert.Equal(t, models.LeaseStatusEnded, updated.Status)
	assert.False(t, updated.IsActive())
	assert.Equal(t, "2026-02-28", *updated.EndDate)
}

func TestLeaseService_UpdateRejects(t *testing.T) {
	f := setup(t)
	lease := f.create(t, "2026-01-01")
	id := uuid.MustParse(lease.ID)

	bogus := "paused"
	_, err := f.svc.Update(f.owner, id, dto.UpdateLease{Status: &bogus})
	var bad *modules.BadRequest
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Unknown lease status", bad.Message)

	inventory := "01/02/2026"
	_, err = f.svc.Update(f.owner, id, dto.UpdateLease{InventoryDate: &inventory})
	assert.True(t, validation.IsValidation(err))

	unchanged, err := f.svc.Get(f.owner, id)
	require.NoError(t, err)
	assert.Equal(t, models.LeaseStatusActive, unchanged.Status)
	assert.Nil(t, unchanged.InventoryDate)
}
