// file: internals/features/reports/route/report_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonsvc "lesprivat_backend/internals/features/lessons/service"
	"lesprivat_backend/internals/features/reports/controller"
	"lesprivat_backend/internals/features/reports/service"
)

func ReportRoutes(api fiber.Router, db *gorm.DB, svc *service.ReportService, resolver lessonsvc.TimeResolver) {
	ctl := controller.NewReportController(db, svc, resolver)

	g := api.Group("/report")
	g.Get("/teacher-billing", ctl.GetTeacherBilling)
}
