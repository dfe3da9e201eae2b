// file: internals/helpers/auth/actor.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang dihydrate oleh middleware auth
const (
	LocUserID = "user_id"
	LocRole   = "role"
)

// GetUserIDFromLocals mengambil actor dari context request.
// 401 kalau tidak ada actor yang terverifikasi.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - actor tidak ditemukan")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak valid")
	}
	return id, nil
}

// GetRoleFromLocals mengambil role actor (default "student" kalau kosong).
func GetRoleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		if r := strings.ToLower(strings.TrimSpace(v)); r != "" {
			return r
		}
	}
	return "student"
}
