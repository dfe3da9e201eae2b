// file: internals/features/courses/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	helper "kursusku_backend/internals/helpers"
	helperAuth "kursusku_backend/internals/helpers/auth"

	dto "kursusku_backend/internals/features/courses/courses/dto"
	model "kursusku_backend/internals/features/courses/courses/model"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Handlers
======================= */

// POST /courses — instructor membuat course miliknya
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	actorID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role := helperAuth.GetRoleFromLocals(c)
	if role != constants.RoleInstructor && role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorInstructor("membuat course"))
	}

	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := body.ToModel(actorID)
	m.CourseID = uuid.New()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Course berhasil dibuat", dto.FromCourseModel(m))
}

// GET /courses — daftar course milik actor (admin melihat semua)
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	actorID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role := helperAuth.GetRoleFromLocals(c)

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if role != constants.RoleAdmin {
		q = q.Where("course_instructor_id = ?", actorID)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("(course_title ILIKE ? OR COALESCE(course_description,'') ILIKE ?)", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.CourseResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromCourseModel(&rows[i]))
	}
	return helper.JsonList(c, "Daftar course", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /courses/:course_id
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
	}
	_, course, err := ensureCourseOwnerOrAdmin(c, ctrl.DB, courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detail course", dto.FromCourseModel(course))
}

// PATCH /courses/:course_id
func (ctrl *CourseController) Patch(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
	}
	_, course, err := ensureCourseOwnerOrAdmin(c, ctrl.DB, courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.PatchCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromCourseModel(course))
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CourseModel{}).
		Where("course_id = ?", courseID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// reload
	var m model.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Course diperbarui", dto.FromCourseModel(&m))
}

// DELETE /courses/:course_id — cascade ke seluruh tree
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
	}
	_, course, err := ensureCourseOwnerOrAdmin(c, ctrl.DB, courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Course dihapus", fiber.Map{
		"course_id": courseID,
	})
}
