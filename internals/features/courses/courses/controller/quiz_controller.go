// file: internals/features/courses/courses/controller/quiz_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "kursusku_backend/internals/helpers"

	dto "kursusku_backend/internals/features/courses/courses/dto"
	model "kursusku_backend/internals/features/courses/courses/model"
)

type QuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctrl *QuizController) guardByModule(c *fiber.Ctx, moduleID uuid.UUID) error {
	courseID, err := moduleCourseID(c, ctrl.DB, moduleID)
	if err != nil {
		return err
	}
	_, _, err = ensureCourseOwnerOrAdmin(c, ctrl.DB, courseID)
	return err
}

func (ctrl *QuizController) guardByQuiz(c *fiber.Ctx, quizID uuid.UUID) error {
	moduleID, err := quizModuleID(c, ctrl.DB, quizID)
	if err != nil {
		return err
	}
	return ctrl.guardByModule(c, moduleID)
}

func (ctrl *QuizController) guardByQuestion(c *fiber.Ctx, questionID uuid.UUID) error {
	quizID, err := questionQuizID(c, ctrl.DB, questionID)
	if err != nil {
		return err
	}
	return ctrl.guardByQuiz(c, quizID)
}

/* =========================
   Quiz
========================= */

// POST /modules/:module_id/quizzes
func (ctrl *QuizController) Create(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(strings.TrimSpace(c.Params("module_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "module_id tidak valid")
	}
	if err := ctrl.guardByModule(c, moduleID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := body.ToModel(moduleID)
	m.QuizID = uuid.New()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Quiz berhasil dibuat", m)
}

// PATCH /quizzes/:id
func (ctrl *QuizController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.guardByQuiz(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.PatchQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"quiz_id": id})
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CourseQuizModel{}).
		Where("quiz_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var m model.CourseQuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "quiz_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Quiz diperbarui", m)
}

// DELETE /quizzes/:id — questions & options ikut terhapus (cascade)
func (ctrl *QuizController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.guardByQuiz(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("quiz_id = ?", id).
		Delete(&model.CourseQuizModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Quiz dihapus", fiber.Map{
		"quiz_id": id,
	})
}

/* =========================
   Question
========================= */

// POST /quizzes/:quiz_id/questions
func (ctrl *QuizController) CreateQuestion(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(strings.TrimSpace(c.Params("quiz_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "quiz_id tidak valid")
	}
	if err := ctrl.guardByQuiz(c, quizID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := body.ToModel(quizID)
	m.QuestionID = uuid.New()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Question berhasil dibuat", m)
}

// PATCH /questions/:id
func (ctrl *QuizController) PatchQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.guardByQuestion(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.PatchQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"question_id": id})
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizQuestionModel{}).
		Where("question_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var m model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Question diperbarui", m)
}

// DELETE /questions/:id
func (ctrl *QuizController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.guardByQuestion(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("question_id = ?", id).
		Delete(&model.QuizQuestionModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Question dihapus", fiber.Map{
		"question_id": id,
	})
}

/* =========================
   Option
========================= */

// POST /questions/:question_id/options
func (ctrl *QuizController) CreateOption(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(strings.TrimSpace(c.Params("question_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "question_id tidak valid")
	}
	if err := ctrl.guardByQuestion(c, questionID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateOptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := body.ToModel(questionID)
	m.OptionID = uuid.New()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Option berhasil dibuat", m)
}

// PATCH /options/:id
func (ctrl *QuizController) PatchOption(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var opt model.QuizQuestionOptionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Select("option_id", "option_question_id").
		First(&opt, "option_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Option tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.guardByQuestion(c, opt.OptionQuestionID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.PatchOptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"option_id": id})
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizQuestionOptionModel{}).
		Where("option_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var m model.QuizQuestionOptionModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "option_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Option diperbarui", m)
}

// DELETE /options/:id
func (ctrl *QuizController) DeleteOption(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var opt model.QuizQuestionOptionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Select("option_id", "option_question_id").
		First(&opt, "option_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Option tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.guardByQuestion(c, opt.OptionQuestionID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("option_id = ?", id).
		Delete(&model.QuizQuestionOptionModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Option dihapus", fiber.Map{
		"option_id": id,
	})
}
