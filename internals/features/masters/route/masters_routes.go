// file: internals/features/masters/route/masters_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesprivat_backend/internals/features/masters/controller"
	helperAuth "lesprivat_backend/internals/helpers/auth"
)

type entityHandlers interface {
	Create(*fiber.Ctx) error
	Update(*fiber.Ctx) error
	Delete(*fiber.Ctx) error
	GetByID(*fiber.Ctx) error
	List(*fiber.Ctx) error
}

func mountEntity(api fiber.Router, prefix string, ctl entityHandlers) {
	mutate := helperAuth.RequireRoles("admin", "owner")

	g := api.Group(prefix)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", mutate, ctl.Create)
	g.Put("/:id", mutate, ctl.Update)
	g.Delete("/:id", mutate, ctl.Delete)
}

// MastersRoutes memasang CRUD master data (customer, teacher, group, student).
func MastersRoutes(api fiber.Router, db *gorm.DB) {
	mountEntity(api, "/customer", controller.NewCustomerController(db))
	mountEntity(api, "/teacher", controller.NewTeacherController(db))
	mountEntity(api, "/group", controller.NewGroupController(db))
	mountEntity(api, "/student", controller.NewStudentController(db))
}
