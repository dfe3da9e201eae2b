// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	authMiddleware "kursusku_backend/internals/middlewares/auth"

	courseRoute "kursusku_backend/internals/features/courses/courses/route"
	versionRoute "kursusku_backend/internals/features/courses/course_versions/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================

	// ADMIN → instruktur/admin, JWT wajib
	log.Println("[INFO] Setting up ADMIN group (AuthJWT)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Course routes...")
	courseRoute.CourseAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Course Version routes...")
	versionRoute.CourseVersionAdminRoutes(admin, db)

	// uptime sederhana
	app.Get("/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"uptime": time.Since(startTime).String(),
		})
	})
}
