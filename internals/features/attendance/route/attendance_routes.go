// file: internals/features/attendance/route/attendance_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesprivat_backend/internals/features/attendance/controller"
	helperAuth "lesprivat_backend/internals/helpers/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)
	mutate := helperAuth.RequireRoles("admin", "owner", "teacher")

	g := api.Group("/attendance")
	g.Get("/", ctl.List)
	g.Get("/lesson/:id", ctl.ListByLesson)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", mutate, ctl.Create)
	g.Put("/:id", mutate, ctl.Update)
	g.Delete("/:id", mutate, ctl.Delete)
}
