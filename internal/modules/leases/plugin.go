package leases

import (
	"github.com/Leestalion/quittance/internal/config"
	"github.com/Leestalion/quittance/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeasesPlugin struct {
	metrics *metrics.Metrics
}

func New(m *metrics.Metrics) *LeasesPlugin {
	return &LeasesPlugin{metrics: m}
}

func (p *LeasesPlugin) ID() string { return "leases" }

func (p *LeasesPlugin) Models() []interface{} {
	return []interface{}{
		&Lease{},
	}
}

func (p *LeasesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewLeaseService(db, p.metrics)
	handler := NewLeaseHandler(svc)

	router.Get("/leases", handler.List)
	router.Post("/leases", handler.Create)
	router.Get("/leases/:id", handler.Get)
	router.Put("/leases/:id", handler.Update)
	router.Delete("/leases/:id", handler.Delete)
}
