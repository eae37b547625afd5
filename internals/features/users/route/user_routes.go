// file: internals/features/users/route/user_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesprivat_backend/internals/features/users/controller"
	helperAuth "lesprivat_backend/internals/helpers/auth"
	"lesprivat_backend/internals/middlewares"
)

// AuthPublicRoutes dipasang sebelum middleware JWT.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)
	api.Post("/auth/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AuthProtectedRoutes dipasang sesudah middleware JWT.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)
	api.Get("/auth/me", ctl.Me)
	api.Post("/auth/register", helperAuth.RequireRoles("owner", "admin"), ctl.Register)
}
