// file: internals/features/courses/course_versions/service/snapshot_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
	dto "kursusku_backend/internals/features/courses/course_versions/dto"
)

/* =========================================================
   Snapshot serializer

   Walk seluruh tree course (module → lesson+content,
   quiz → question → option) terurut by position dan bangun
   dokumen deep-copy yang self-contained. Semua query batch
   per level (IN (...)), bukan loop query per parent.
========================================================= */

func BuildSnapshot(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*dto.SnapshotDocument, error) {
	// ---- course scalars
	var course courseModel.CourseModel
	if err := db.WithContext(ctx).First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	doc := &dto.SnapshotDocument{
		CourseData: dto.SnapshotCourseDataFromModel(&course),
		Modules:    []dto.SnapshotModule{},
	}

	// ---- modules (ordered)
	var modules []courseModel.CourseModuleModel
	if err := db.WithContext(ctx).
		Where("module_course_id = ?", courseID).
		Order("module_position ASC, module_created_at ASC").
		Find(&modules).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil modules")
	}
	if len(modules) == 0 {
		return doc, nil
	}

	moduleIDs := make([]uuid.UUID, 0, len(modules))
	for i := range modules {
		moduleIDs = append(moduleIDs, modules[i].ModuleID)
	}

	// ---- lessons per module
	var lessons []courseModel.CourseLessonModel
	if err := db.WithContext(ctx).
		Where("lesson_module_id IN ?", moduleIDs).
		Order("lesson_position ASC, lesson_created_at ASC").
		Find(&lessons).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lessons")
	}

	lessonIDs := make([]uuid.UUID, 0, len(lessons))
	lessonsByModule := make(map[uuid.UUID][]dto.SnapshotLesson, len(modules))
	lessonIndex := make(map[uuid.UUID]int, len(lessons)) // lesson_id → index di slice modulenya
	for i := range lessons {
		l := &lessons[i]
		lessonIDs = append(lessonIDs, l.LessonID)
		sl := dto.SnapshotLessonFromModel(l)
		lessonsByModule[l.LessonModuleID] = append(lessonsByModule[l.LessonModuleID], sl)
		lessonIndex[l.LessonID] = len(lessonsByModule[l.LessonModuleID]) - 1
	}

	// ---- lesson contents (1:1, optional)
	if len(lessonIDs) > 0 {
		var contents []courseModel.LessonContentModel
		if err := db.WithContext(ctx).
			Where("lesson_content_lesson_id IN ?", lessonIDs).
			Find(&contents).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lesson contents")
		}
		lessonModule := make(map[uuid.UUID]uuid.UUID, len(lessons))
		for i := range lessons {
			lessonModule[lessons[i].LessonID] = lessons[i].LessonModuleID
		}
		for i := range contents {
			ct := &contents[i]
			mid := lessonModule[ct.LessonContentLessonID]
			if idx, ok := lessonIndex[ct.LessonContentLessonID]; ok {
				lessonsByModule[mid][idx].Content = dto.SnapshotLessonContentFromModel(ct)
			}
		}
	}

	// ---- quizzes per module
	var quizzes []courseModel.CourseQuizModel
	if err := db.WithContext(ctx).
		Where("quiz_module_id IN ?", moduleIDs).
		Order("quiz_position ASC, quiz_created_at ASC").
		Find(&quizzes).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil quizzes")
	}

	quizIDs := make([]uuid.UUID, 0, len(quizzes))
	quizzesByModule := make(map[uuid.UUID][]dto.SnapshotQuiz, len(modules))
	for i := range quizzes {
		q := &quizzes[i]
		quizIDs = append(quizIDs, q.QuizID)
		quizzesByModule[q.QuizModuleID] = append(quizzesByModule[q.QuizModuleID], dto.SnapshotQuizFromModel(q))
	}

	// ---- questions per quiz
	questionsByQuiz := make(map[uuid.UUID][]dto.SnapshotQuestion)
	questionQuiz := make(map[uuid.UUID]uuid.UUID)
	questionIndex := make(map[uuid.UUID]int)
	if len(quizIDs) > 0 {
		var questions []courseModel.QuizQuestionModel
		if err := db.WithContext(ctx).
			Where("question_quiz_id IN ?", quizIDs).
			Order("question_position ASC, question_created_at ASC").
			Find(&questions).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil quiz questions")
		}

		questionIDs := make([]uuid.UUID, 0, len(questions))
		for i := range questions {
			x := &questions[i]
			questionIDs = append(questionIDs, x.QuestionID)
			sx := dto.SnapshotQuestionFromModel(x)
			questionsByQuiz[x.QuestionQuizID] = append(questionsByQuiz[x.QuestionQuizID], sx)
			questionQuiz[x.QuestionID] = x.QuestionQuizID
			questionIndex[x.QuestionID] = len(questionsByQuiz[x.QuestionQuizID]) - 1
		}

		// ---- options per question
		if len(questionIDs) > 0 {
			var options []courseModel.QuizQuestionOptionModel
			if err := db.WithContext(ctx).
				Where("option_question_id IN ?", questionIDs).
				Order("option_position ASC, option_created_at ASC").
				Find(&options).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil question options")
			}
			for i := range options {
				o := &options[i]
				qid := questionQuiz[o.OptionQuestionID]
				if idx, ok := questionIndex[o.OptionQuestionID]; ok {
					questionsByQuiz[qid][idx].Options = append(questionsByQuiz[qid][idx].Options, dto.SnapshotOptionFromModel(o))
				}
			}
		}
	}

	// ---- rakit dokumen sesuai urutan module
	for i := range modules {
		m := &modules[i]
		sm := dto.SnapshotModuleFromModel(m)
		if ls, ok := lessonsByModule[m.ModuleID]; ok {
			sm.Lessons = ls
		}
		if qs, ok := quizzesByModule[m.ModuleID]; ok {
			for qi := range qs {
				if xs, ok := questionsByQuiz[qs[qi].ID]; ok {
					qs[qi].Questions = xs
				}
			}
			sm.Quizzes = qs
		}
		doc.Modules = append(doc.Modules, sm)
	}

	return doc, nil
}
