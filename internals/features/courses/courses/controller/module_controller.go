// file: internals/features/courses/courses/controller/module_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "kursusku_backend/internals/helpers"

	dto "kursusku_backend/internals/features/courses/courses/dto"
	model "kursusku_backend/internals/features/courses/courses/model"
)

type ModuleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /courses/:course_id/modules
func (ctrl *ModuleController) Create(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
	}
	if _, _, err := ensureCourseOwnerOrAdmin(c, ctrl.DB, courseID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := body.ToModel(courseID)
	m.ModuleID = uuid.New()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Module berhasil dibuat", m)
}

// GET /courses/:course_id/modules — terurut by position
func (ctrl *ModuleController) List(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
	}
	if _, _, err := ensureCourseOwnerOrAdmin(c, ctrl.DB, courseID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.CourseModuleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("module_course_id = ?", courseID).
		Order("module_position ASC, module_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Daftar module", rows)
}

// PATCH /modules/:id
func (ctrl *ModuleController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	courseID, err := moduleCourseID(c, ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, _, err := ensureCourseOwnerOrAdmin(c, ctrl.DB, courseID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.PatchModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"module_id": id})
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CourseModuleModel{}).
		Where("module_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var m model.CourseModuleModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "module_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Module diperbarui", m)
}

// DELETE /modules/:id — cascade ke lessons/contents/quizzes/questions/options
func (ctrl *ModuleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	courseID, err := moduleCourseID(c, ctrl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, _, err := ensureCourseOwnerOrAdmin(c, ctrl.DB, courseID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("module_id = ?", id).
		Delete(&model.CourseModuleModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Module dihapus", fiber.Map{
		"module_id": id,
	})
}
