// file: internals/middlewares/middleware.go
package middlewares

import "github.com/gofiber/fiber/v2"

// SetupMiddlewares memasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu logging, CORS, dan rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
