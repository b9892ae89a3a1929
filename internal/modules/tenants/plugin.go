package tenants

import (
	"github.com/Leestalion/quittance/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TenantsPlugin struct{}

func New() *TenantsPlugin {
	return &TenantsPlugin{}
}

func (p *TenantsPlugin) ID() string { return "tenants" }

func (p *TenantsPlugin) Models() []interface{} {
	return []interface{}{
		&Tenant{},
	}
}

func (p *TenantsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewTenantService(db)
	handler := NewTenantHandler(svc)

	router.Get("/tenants", handler.List)
	router.Post("/tenants", handler.Create)
	router.Get("/tenants/:id", handler.Get)
	router.Put("/tenants/:id", handler.Update)
	router.Delete("/tenants/:id", handler.Delete)
}
