// file: internals/features/lessons/route/lesson_routes.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lctl "lesprivat_backend/internals/features/lessons/controller"
	lsvc "lesprivat_backend/internals/features/lessons/service"
)

// LessonRoutes mendaftarkan CRUD + query lesson di bawah router ber-auth.
// Service di-share supaya hook invalidasi cache report cukup dipasang sekali.
func LessonRoutes(api fiber.Router, db *gorm.DB, service *lsvc.LessonService) {
	ctl := lctl.New(service, validator.New())

	grp := api.Group("/lesson")

	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/group/:id", ctl.ListByGroup)
	grp.Get("/teacher/:id", ctl.ListByTeacher)
	grp.Get("/customer/:id", ctl.ListByCustomer)
	grp.Get("/student/:id", ctl.ListByStudent)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
