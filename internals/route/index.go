// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "lesprivat_backend/internals/features/attendance/route"
	lessonRoute "lesprivat_backend/internals/features/lessons/route"
	lessonSvc "lesprivat_backend/internals/features/lessons/service"
	mastersRoute "lesprivat_backend/internals/features/masters/route"
	reportRoute "lesprivat_backend/internals/features/reports/route"
	reportSvc "lesprivat_backend/internals/features/reports/service"
	userRoute "lesprivat_backend/internals/features/users/route"
	"lesprivat_backend/internals/helpers/dbtime"
	"lesprivat_backend/internals/middlewares"
)

var startTime time.Time

// SetupRoutes merangkai seluruh route: publik (login) dulu, sisanya di
// belakang middleware JWT.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	public := app.Group("/api")
	userRoute.AuthPublicRoutes(public, db)

	api := app.Group("/api", middlewares.JWTAuth())

	// lesson service & report service saling terhubung: mutasi lesson
	// membatalkan cache rekap milik partition yang sama.
	lessons := lessonSvc.NewLessonService(db, dbtime.SystemClock{})
	reports := reportSvc.NewReportService(db)
	lessons.OnMutate(reports.InvalidatePartition)

	userRoute.AuthProtectedRoutes(api, db)
	mastersRoute.MastersRoutes(api, db)
	lessonRoute.LessonRoutes(api, db, lessons)
	attendanceRoute.AttendanceRoutes(api, db)
	reportRoute.ReportRoutes(api, db, reports, lessonSvc.NewTimeResolver(dbtime.SystemClock{}))
}
