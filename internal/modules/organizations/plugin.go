package organizations

import (
	"github.com/Leestalion/quittance/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrganizationsPlugin struct{}

func New() *OrganizationsPlugin {
	return &OrganizationsPlugin{}
}

func (p *OrganizationsPlugin) ID() string { return "organizations" }

func (p *OrganizationsPlugin) Models() []interface{} {
	return []interface{}{
		&Organization{},
		&Member{},
	}
}

func (p *OrganizationsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewOrganizationService(db)
	handler := NewOrganizationHandler(svc)

	router.Get("/organizations", handler.List)
	router.Post("/organizations", handler.Create)
	router.Get("/organizations/:id", handler.Get)
	router.Put("/organizations/:id", handler.Update)
	router.Delete("/organizations/:id", handler.Delete)
	router.Get("/organizations/:id/members", handler.ListMembers)
	router.Post("/organizations/:id/members", handler.AddMember)
	router.Delete("/organizations/:id/members/:memberId", handler.RemoveMember)
}
