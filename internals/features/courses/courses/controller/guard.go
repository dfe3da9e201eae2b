// file: internals/features/courses/courses/controller/guard.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	helperAuth "kursusku_backend/internals/helpers/auth"

	model "kursusku_backend/internals/features/courses/courses/model"
)

// ensureCourseOwnerOrAdmin: aturan akses authoring sama dengan versi —
// instructor pemilik course atau admin. Dicek per request.
func ensureCourseOwnerOrAdmin(c *fiber.Ctx, db *gorm.DB, courseID uuid.UUID) (uuid.UUID, *model.CourseModel, error) {
	actorID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	role := helperAuth.GetRoleFromLocals(c)

	var course model.CourseModel
	if err := db.WithContext(c.UserContext()).First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return uuid.Nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	if role != constants.RoleAdmin && course.CourseInstructorID != actorID {
		return uuid.Nil, nil, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorInstructor("authoring course"))
	}
	return actorID, &course, nil
}

// moduleCourseID: resolve course pemilik sebuah module (untuk guard di route /modules/:id)
func moduleCourseID(c *fiber.Ctx, db *gorm.DB, moduleID uuid.UUID) (uuid.UUID, error) {
	var m model.CourseModuleModel
	if err := db.WithContext(c.UserContext()).
		Select("module_id", "module_course_id").
		First(&m, "module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Module tidak ditemukan")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil module")
	}
	return m.ModuleCourseID, nil
}

// lessonModuleID / quizModuleID / questionQuizID: dipakai guard level bawah.
func lessonModuleID(c *fiber.Ctx, db *gorm.DB, lessonID uuid.UUID) (uuid.UUID, error) {
	var l model.CourseLessonModel
	if err := db.WithContext(c.UserContext()).
		Select("lesson_id", "lesson_module_id").
		First(&l, "lesson_id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}
	return l.LessonModuleID, nil
}

func quizModuleID(c *fiber.Ctx, db *gorm.DB, quizID uuid.UUID) (uuid.UUID, error) {
	var q model.CourseQuizModel
	if err := db.WithContext(c.UserContext()).
		Select("quiz_id", "quiz_module_id").
		First(&q, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil quiz")
	}
	return q.QuizModuleID, nil
}

func questionQuizID(c *fiber.Ctx, db *gorm.DB, questionID uuid.UUID) (uuid.UUID, error) {
	var x model.QuizQuestionModel
	if err := db.WithContext(c.UserContext()).
		Select("question_id", "question_quiz_id").
		First(&x, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Question tidak ditemukan")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil question")
	}
	return x.QuestionQuizID, nil
}
