// file: internals/features/courses/course_versions/controller/course_version_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "kursusku_backend/internals/helpers"
	helperAuth "kursusku_backend/internals/helpers/auth"

	dto "kursusku_backend/internals/features/courses/course_versions/dto"
	model "kursusku_backend/internals/features/courses/course_versions/model"
	service "kursusku_backend/internals/features/courses/course_versions/service"
)

type CourseVersionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseVersionController(db *gorm.DB) *CourseVersionController {
	return &CourseVersionController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Guard bersama handler
======================= */

func (ctrl *CourseVersionController) guard(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "course_id tidak valid")
	}

	actorID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	role := helperAuth.GetRoleFromLocals(c)

	if _, err := service.EnsureCourseAccess(c.UserContext(), ctrl.DB, courseID, actorID, role); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return courseID, actorID, nil
}

/* =======================
   Handlers
======================= */

// GET /courses/:course_id/versions — riwayat versi (meta saja)
func (ctrl *CourseVersionController) List(c *fiber.Ctx) error {
	courseID, _, err := ctrl.guard(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := service.ListVersions(c.UserContext(), ctrl.DB, courseID, p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	items := make([]dto.CourseVersionMetaResponse, 0, len(rows))
	for i := range rows {
		name := service.LookupAuthorName(c.UserContext(), ctrl.DB, rows[i].CourseVersionCreatedBy)
		items = append(items, dto.VersionMetaFromModel(&rows[i], name))
	}

	return helper.JsonList(c, "Daftar versi course", items,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// POST /courses/:course_id/versions — simpan versi eksplisit (atau autosave)
func (ctrl *CourseVersionController) Create(c *fiber.Ctx) error {
	courseID, actorID, err := ctrl.guard(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateVersionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	isAutosave := false
	if body.VersionIsAutosave != nil {
		isAutosave = *body.VersionIsAutosave
	}

	var created *model.CourseVersionModel
	txErr := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		v, err := service.CreateVersion(c.UserContext(), tx, courseID,
			body.VersionTitle, body.VersionDescription, isAutosave, actorID)
		if err != nil {
			return err
		}
		created = v

		// jejak audit best-effort
		audit := model.CourseAuditLogModel{
			AuditID:       uuid.New(),
			AuditCourseID: courseID,
			AuditActorID:  actorID,
			AuditAction:   model.AuditActionCreateVersion,
			AuditTargetID: &v.CourseVersionID,
		}
		if err := tx.Create(&audit).Error; err != nil {
			log.Printf("[WARN] audit create version gagal ditulis: %v", err)
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	name := service.LookupAuthorName(c.UserContext(), ctrl.DB, actorID)
	return helper.JsonCreated(c, "Versi course tersimpan", dto.VersionMetaFromModel(created, name))
}

// GET /courses/:course_id/versions/:version_id — meta + dokumen snapshot utuh
func (ctrl *CourseVersionController) GetByID(c *fiber.Ctx) error {
	courseID, _, err := ctrl.guard(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	versionID, err := uuid.Parse(strings.TrimSpace(c.Params("version_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "version_id tidak valid")
	}

	version, err := service.GetVersion(c.UserContext(), ctrl.DB, courseID, versionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	doc, err := service.DecodeVersionSnapshot(version)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	name := service.LookupAuthorName(c.UserContext(), ctrl.DB, version.CourseVersionCreatedBy)
	return helper.JsonOK(c, "Detail versi course", dto.VersionDetailFromModel(version, name, doc))
}

// POST /courses/:course_id/versions/:version_id/restore
func (ctrl *CourseVersionController) Restore(c *fiber.Ctx) error {
	courseID, actorID, err := ctrl.guard(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	versionID, err := uuid.Parse(strings.TrimSpace(c.Params("version_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "version_id tidak valid")
	}

	svc := service.NewRestoreService(ctrl.DB)
	result, err := svc.Restore(c.UserContext(), courseID, versionID, actorID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Course dipulihkan ke versi terpilih", result)
}
