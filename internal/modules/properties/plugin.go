package properties

import (
	"github.com/Leestalion/quittance/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PropertiesPlugin struct{}

func New() *PropertiesPlugin {
	return &PropertiesPlugin{}
}

func (p *PropertiesPlugin) ID() string { return "properties" }

func (p *PropertiesPlugin) Models() []interface{} {
	return []interface{}{
		&Property{},
	}
}

func (p *PropertiesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewPropertyService(db)
	handler := NewPropertyHandler(svc)

	router.Get("/properties", handler.List)
	router.Post("/properties", handler.Create)
	router.Get("/properties/:id", handler.Get)
	router.Put("/properties/:id", handler.Update)
	router.Delete("/properties/:id", handler.Delete)
}
