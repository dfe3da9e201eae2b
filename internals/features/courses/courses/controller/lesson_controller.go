// file: internals/features/courses/courses/controller/lesson_controller.go
package controller

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "kursusku_backend/internals/helpers"

	dto "kursusku_backend/internals/features/courses/courses/dto"
	model "kursusku_backend/internals/features/courses/courses/model"
)

type LessonController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctrl *LessonController) guardByModule(c *fiber.Ctx, moduleID uuid.UUID) error {
	courseID, err := moduleCourseID(c, ctrl.DB, moduleID)
	if err != nil {
		return err
	}
	_, _, err = ensureCourseOwnerOrAdmin(c, ctrl.DB, courseID)
	return err
}

func (ctrl *LessonController) guardByLesson(c *fiber.Ctx, lessonID uuid.UUID) error {
	moduleID, err := lessonModuleID(c, ctrl.DB, lessonID)
	if err != nil {
		return err
	}
	return ctrl.guardByModule(c, moduleID)
}

// POST /modules/:module_id/lessons
func (ctrl *LessonController) Create(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(strings.TrimSpace(c.Params("module_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "module_id tidak valid")
	}
	if err := ctrl.guardByModule(c, moduleID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := body.ToModel(moduleID)
	m.LessonID = uuid.New()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Lesson berhasil dibuat", m)
}

// PATCH /lessons/:id
func (ctrl *LessonController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.guardByLesson(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.PatchLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"lesson_id": id})
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CourseLessonModel{}).
		Where("lesson_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var m model.CourseLessonModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "lesson_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Lesson diperbarui", m)
}

// DELETE /lessons/:id — content ikut terhapus (cascade)
func (ctrl *LessonController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.guardByLesson(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("lesson_id = ?", id).
		Delete(&model.CourseLessonModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Lesson dihapus", fiber.Map{
		"lesson_id": id,
	})
}

// PUT /lessons/:id/content — upsert keyed lesson_id (1:1)
func (ctrl *LessonController) PutContent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.guardByLesson(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.PutLessonContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := model.LessonContentModel{
		LessonContentID:          uuid.New(),
		LessonContentLessonID:    id,
		LessonContentBody:        body.LessonContentBody,
		LessonContentVideoURL:    body.LessonContentVideoURL,
		LessonContentDurationSec: body.LessonContentDurationSec,
		LessonContentAttachments: mustJSON(body.LessonContentAttachments),
		LessonContentResources:   mustJSON(body.LessonContentResources),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "lesson_content_lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"lesson_content_body",
			"lesson_content_video_url",
			"lesson_content_duration_sec",
			"lesson_content_attachments",
			"lesson_content_resources",
			"lesson_content_updated_at",
		}),
	}).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Lesson content tersimpan", row)
}

// DELETE /lessons/:id/content
func (ctrl *LessonController) DeleteContent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.guardByLesson(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("lesson_content_lesson_id = ?", id).
		Delete(&model.LessonContentModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Lesson content dihapus", fiber.Map{
		"lesson_id": id,
	})
}

func mustJSON(v any) datatypes.JSON {
	if v == nil {
		return datatypes.JSON([]byte("[]"))
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}
