// file: internals/helpers/auth/partition.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

// GetPartitionID mengambil partition aktif yang sudah divalidasi middleware
// auth dari Locals. Partition TIDAK pernah diambil dari body/query — satu
// token satu scope.
func GetPartitionID(c *fiber.Ctx) (int64, error) {
	v := c.Locals("partition_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Partition scope tidak ditemukan di token")
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Partition scope tidak valid")
	}
	return id, nil
}

// GetUserID: user id dari token (diisi middleware auth).
func GetUserID(c *fiber.Ctx) (int64, error) {
	v := c.Locals("user_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan di token")
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "User id tidak valid")
	}
	return id, nil
}

// GetRole: role dari token; string kosong kalau tidak ada.
func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok {
		return v
	}
	return ""
}

// RequireRoles menolak request yang role token-nya tidak ada di daftar.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[GetRole(c)]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
		}
		return c.Next()
	}
}
