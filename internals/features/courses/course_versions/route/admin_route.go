package route

import (
	vcontroller "kursusku_backend/internals/features/courses/course_versions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CourseVersionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	versionCtrl := vcontroller.NewCourseVersionController(db)

	// =========================
	// 🕘 COURSE VERSION (ADMIN AREA)
	// =========================

	// Prefix: /courses/:course_id/versions → /api/a/courses/:course_id/versions/...
	versions := admin.Group("/courses/:course_id/versions")

	versions.Get("/", versionCtrl.List)
	versions.Post("/", versionCtrl.Create)
	versions.Get("/:version_id", versionCtrl.GetByID)
	versions.Post("/:version_id/restore", versionCtrl.Restore)
}
