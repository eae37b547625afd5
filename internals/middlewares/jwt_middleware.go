// file: internals/middlewares/jwt_middleware.go
package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "lesprivat_backend/internals/helpers"
	helperAuth "lesprivat_backend/internals/helpers/auth"
)

// JWTAuth memvalidasi bearer token dan menaruh identitas di Locals.
// partition_id HANYA berasal dari sini; body request tidak pernah dipercaya.
func JWTAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
		}
		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := helperAuth.ParseToken(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid atau sudah kedaluwarsa")
		}
		if claims.PartitionID <= 0 || claims.UserID <= 0 {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak lengkap")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("partition_id", claims.PartitionID)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}
