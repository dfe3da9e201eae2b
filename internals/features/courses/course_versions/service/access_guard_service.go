// file: internals/features/courses/course_versions/service/access_guard_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	courseModel "kursusku_backend/internals/features/courses/courses/model"
)

/* =========================================================
   Access guard

   Wajib lolos sebelum baca/restore versi: actor harus
   instructor pemilik course, atau admin platform.
   Dievaluasi ulang tiap request, tanpa cache.
========================================================= */

func EnsureCourseAccess(
	ctx context.Context,
	db *gorm.DB,
	courseID uuid.UUID,
	actorID uuid.UUID,
	role string,
) (*courseModel.CourseModel, error) {
	if actorID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var course courseModel.CourseModel
	if err := db.WithContext(ctx).First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	if role == constants.RoleAdmin || course.CourseInstructorID == actorID {
		return &course, nil
	}
	return nil, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorInstructor("versi course"))
}
