package receipts

import (
	"math"
	"path/filepath"
	"testing"
	"time"

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
	"github.com/Leestalion/quittance/internal/modules/leases"
	"github.com/Leestalion/quittance/internal/modules/properties"
	"github.com/Leestalion/quittance/internal/modules/tenants"
	"github.com/Leestalion/quittance/internal/services"
	"github.com/Leestalion/quittance/internal/validation"
)

type fixture struct {
	svc     *ReceiptService
	metrics *metrics.Metrics
	db      *gorm.DB
	owner   uuid.UUID
	lease   string
}

func setup(t *testing.T) fixture {
	t.Helper()

	db, err := database.Open(&config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "receipts.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.MigrateShared(db))

	m := metrics.New()
	for _, p := range []modules.Plugin{properties.New(), tenants.New(), leases.New(m), New(m)} {
		require.NoError(t, database.MigrateModels(db, p.Models()))
	}

	acc := models.Account{ID: uuid.New(), Email: "owner@example.com", Password: "x", Name: "Owner", Address: "-"}
	require.NoError(t, db.Create(&acc).Error)

	prop, err := properties.NewPropertyService(db).Create(acc.ID, dto.CreateProperty{Address: "9 rue Cler", PropertyType: "apartment"})
	require.NoError(t, err)
	tenant, err := tenants.NewTenantService(db).Create(acc.ID, dto.CreateTenant{Name: "Lucie"})
	require.NoError(t, err)
	lease, err := leases.NewLeaseService(db, m).Create(acc.ID, dto.CreateLease{
		PropertyID: prop.ID, TenantID: tenant.ID, StartDate: "2026-01-01", DurationMonths: 12,
		MonthlyRent: models.Euros(900),
	})
	require.NoError(t, err)

	svc := NewReceiptService(db, m)
	svc.now = func() time.Time { return time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC) }
	return fixture{svc: svc, metrics: m, db: db, owner: acc.ID, lease: lease.ID}
}

func (f fixture) create(t *testing.T, month int) *models.Receipt {
	t.Helper()
	r, err := f.svc.Create(f.owner, dto.CreateReceipt{
		LeaseID: f.lease, PeriodMonth: month, PeriodYear: 2026,
		BaseRent: models.Euros(900), Charges: models.Euros(75.25), PaymentDate: "2026-02-01",
	})
	require.NoError(t, err)
	return r
}

func TestReceiptService_Create(t *testing.T) {
	f := setup(t)
	r := f.create(t, 1)

	assert.Equal(t, models.Euros(975.25), r.TotalAmount)
	assert.True(t, r.IsPending())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ReceiptsGenerated))
}

func TestReceiptService_CreateRejects(t *testing.T) {
	f := setup(t)
	f.create(t, 1)

	tests := []struct {
		name string
		req  dto.CreateReceipt
		want string
	}{
		{"duplicate period", dto.CreateReceipt{LeaseID: f.lease, PeriodMonth: 1, PeriodYear: 2026, PaymentDate: "2026-02-01"}, "Receipt already exists for 1/2026"},
		{"month zero", dto.CreateReceipt{LeaseID: f.lease, PeriodMonth: 0, PeriodYear: 2026, PaymentDate: "2026-02-01"}, "Period month must be between 1 and 12"},
		{"negative charges", dto.CreateReceipt{LeaseID: f.lease, PeriodMonth: 2, PeriodYear: 2026, Charges: -1, PaymentDate: "2026-02-01"}, "Rent amounts cannot be negative"},
		{"overflowing rent", dto.CreateReceipt{LeaseID: f.lease, PeriodMonth: 2, PeriodYear: 2026, BaseRent: math.MaxInt64, Charges: 1, PaymentDate: "2026-02-01"}, "Rent amounts are too large"},
		{"bad lease id", dto.CreateReceipt{LeaseID: "nope", PeriodMonth: 2, PeriodYear: 2026, PaymentDate: "2026-02-01"}, "Invalid lease ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(f.owner, tt.req)
			var bad *modules.BadRequest
			require.ErrorAs(t, err, &bad)
			assert.Equal(t, tt.want, bad.Message)
		})
	}

	_, err := f.svc.Create(f.owner, dto.CreateReceipt{LeaseID: f.lease, PeriodMonth: 2, PeriodYear: 2026, PaymentDate: "Feb 1"})
	assert.True(t, validation.IsValidation(err))

	_, err = f.svc.Create(uuid.New(), dto.CreateReceipt{LeaseID: f.lease, PeriodMonth: 2, PeriodYear: 2026, PaymentDate: "2026-02-01"})
	var missing *modules.NotFound
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Lease not found", missing.Message)
}

func TestReceiptService_ListLatestPeriodFirst(t *testing.T) {
	f := setup(t)
	f.create(t, 1)
	f.create(t, 3)
	f.create(t, 2)

	list, err := f.svc.List(f.owner, nil)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{list[0].PeriodMonth, list[1].PeriodMonth, list[2].PeriodMonth})

	other := uuid.New()
	list, err = f.svc.List(f.owner, &other)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReceiptService_Send(t *testing.T) {
	f := setup(t)
	r := f.create(t, 1)
	id := uuid.MustParse(r.ID)

	sent, err := f.svc.Send(f.owner, id)
	require.NoError(t, err)
	assert.Equal(t, models.ReceiptStatusSent, sent.Status)
	require.NotNil(t, sent.EmailSentAt)
	assert.Equal(t, "2026-02-03T10:30:00", *sent.EmailSentAt)
	assert.False(t, sent.IsPending())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ReceiptsSent))

	_, err = f.svc.Send(uuid.New(), id)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestReceiptService_UpdateAndDelete(t *testing.T) {
	f := setup(t)
	r := f.create(t, 1)
	id := uuid.MustParse(r.ID)

	bogus := "lost"
	_, err := f.svc.Update(f.owner, id, dto.UpdateReceipt{Status: &bogus})
	var bad *modules.BadRequest
	assert.ErrorAs(t, err, &bad)

	paid := "2026-02-10"
	updated, err := f.svc.Update(f.owner, id, dto.UpdateReceipt{PaymentDate: &paid})
	require.NoError(t, err)
	assert.Equal(t, paid, updated.PaymentDate)

	assert.ErrorIs(t, f.svc.Delete(uuid.New(), id), services.ErrNotFound)
	require.NoError(t, f.svc.Delete(f.owner, id))
	_, err = f.svc.Get(f.owner, id)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestReceiptService_GoneWithTheirLease(t *testing.T) {
	f := setup(t)
	r := f.create(t, 1)
	f.create(t, 2)

	require.NoError(t, leases.NewLeaseService(f.db, f.metrics).Delete(f.owner, uuid.MustParse(f.lease)))

	_, err := f.svc.Get(f.owner, uuid.MustParse(r.ID))
	assert.ErrorIs(t, err, services.ErrNotFound)
	var left int64
	require.NoError(t, f.db.Model(&Receipt{}).Count(&left).Error)
	assert.Zero(t, left)
}

func TestReceiptService_GoneWithTheirTenant(t *testing.T) {
	f := setup(t)
	f.create(t, 1)
	lease, err := leases.NewLeaseService(f.db, f.metrics).Get(f.owner, uuid.MustParse(f.lease))
	require.NoError(t, err)

	tenantsSvc := tenants.NewTenantService(f.db)
	assert.ErrorIs(t, tenantsSvc.Delete(uuid.New(), uuid.MustParse(lease.TenantID)), services.ErrNotFound)
	require.NoError(t, tenantsSvc.Delete(f.owner, uuid.MustParse(lease.TenantID)))

	remaining, err := leases.NewLeaseService(f.db, f.metrics).List(f.owner, nil)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	receipts, err := f.svc.List(f.owner, nil)
	require.NoError(t, err)
	assert.Empty(t, receipts)
}
