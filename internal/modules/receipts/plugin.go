package receipts

import (
	"github.com/Leestalion/quittance/internal/config"
	"github.com/Leestalion/quittance/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReceiptsPlugin struct {
	metrics *metrics.Metrics
}

func New(m *metrics.Metrics) *ReceiptsPlugin {
	return &ReceiptsPlugin{metrics: m}
}

func (p *ReceiptsPlugin) ID() string { return "receipts" }

func (p *ReceiptsPlugin) Models() []interface{} {
	return []interface{}{
		&Receipt{},
	}
}

func (p *ReceiptsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewReceiptService(db, p.metrics)
	handler := NewReceiptHandler(svc)

	router.Get("/receipts", handler.List)
	router.Post("/receipts", handler.Create)
	router.Get("/receipts/:id", handler.Get)
	router.Put("/receipts/:id", handler.Update)
	router.Delete("/receipts/:id", handler.Delete)
	router.Post("/receipts/:id/send", handler.Send)
}
