// file: internals/features/courses/course_versions/service/restore_service.go
package service

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
	dto "kursusku_backend/internals/features/courses/course_versions/dto"
	model "kursusku_backend/internals/features/courses/course_versions/model"
)

/* =========================================================
   Restore reconciler

   Merekonsiliasi live tree ke snapshot target per level:
   course scalars → modules → (lessons+contents, quizzes →
   questions → options). Per level berlaku aturan set-difference:

     - id live yang tidak ada di snapshot   → DELETE (cascade)
     - id di keduanya                       → UPDATE in place (id tetap)
     - id hanya di snapshot                 → CREATE dengan id snapshot
                                              (identity-preserving insert)

   Id yang hidup di keduanya WAJIB tetap sama setelah restore;
   enrollment/submission/grade pegang FK ke id tersebut.

   Seluruh langkah + backup berjalan dalam SATU transaksi:
   error apapun membatalkan semuanya, tidak ada mutasi parsial.
   Setiap fungsi per-level menerima tx eksplisit.
========================================================= */

type RestoreService struct {
	DB *gorm.DB
}

func NewRestoreService(db *gorm.DB) *RestoreService {
	return &RestoreService{DB: db}
}

func (s *RestoreService) Restore(ctx context.Context, courseID, versionID, actorID uuid.UUID) (*dto.RestoreVersionResponse, error) {
	// 1) Muat versi target (course_id + version_id harus cocok)
	version, err := GetVersion(ctx, s.DB, courseID, versionID)
	if err != nil {
		return nil, err
	}

	// 2) Decode + validasi snapshot SEBELUM mutasi apapun —
	//    dokumen rusak tidak boleh merusak tree separuh jalan.
	doc, err := DecodeVersionSnapshot(version)
	if err != nil {
		return nil, err
	}

	var backupID uuid.UUID

	// 3) Satu transaksi: backup + seluruh rekonsiliasi + audit
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Advisory lock per course: dua restore (atau restore vs edit
		// yang ikut lock ini) pada course yang sama tidak saling balapan.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(hashtextextended(?::text, 0))",
				courseID.String(),
			).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lock course")
			}
		}

		var course courseModel.CourseModel
		if err := tx.First(&course, "course_id = ?", courseID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}

		// 3a) Backup state sekarang sebagai versi baru — write pertama
		//     di transaksi, supaya restore sendiri bisa di-undo.
		backup, err := CreateVersion(ctx, tx, courseID,
			"Sebelum pulihkan: "+version.CourseVersionTitle, nil, false, actorID)
		if err != nil {
			return err
		}
		backupID = backup.CourseVersionID

		// 3b) Course scalars (course_id tidak pernah berubah)
		doc.CourseData.ApplyToCourseModel(&course)
		if err := tx.Save(&course).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui course")
		}

		// 3c..3f) Modules → lessons/contents, quizzes → questions → options
		if err := reconcileModules(tx, courseID, doc.Modules); err != nil {
			return err
		}

		// 3g) Audit — best-effort, gagal audit tidak membatalkan restore
		note := "restore ke versi: " + version.CourseVersionTitle
		audit := model.CourseAuditLogModel{
			AuditID:       uuid.New(),
			AuditCourseID: courseID,
			AuditActorID:  actorID,
			AuditAction:   model.AuditActionRestoreVersion,
			AuditTargetID: &version.CourseVersionID,
			AuditNote:     &note,
		}
		if err := tx.Create(&audit).Error; err != nil {
			log.Printf("[WARN] audit restore gagal ditulis: %v", err)
		}

		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return nil, fe
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Restore gagal: "+txErr.Error())
	}

	return &dto.RestoreVersionResponse{
		CourseID:          courseID,
		RestoredVersionID: version.CourseVersionID,
		BackupVersionID:   backupID,
	}, nil
}

/* =========================================================
   Per-level reconcile. Set math pakai map keyed by id, O(n).
========================================================= */

func reconcileModules(tx *gorm.DB, courseID uuid.UUID, want []dto.SnapshotModule) error {
	var existing []courseModel.CourseModuleModel
	if err := tx.Where("module_course_id = ?", courseID).Find(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca modules live")
	}

	existingIDs := make(map[uuid.UUID]struct{}, len(existing))
	for i := range existing {
		existingIDs[existing[i].ModuleID] = struct{}{}
	}
	wantIDs := make(map[uuid.UUID]struct{}, len(want))
	for i := range want {
		wantIDs[want[i].ID] = struct{}{}
	}

	// E \ S → delete (cascade ke lessons/contents/quizzes/questions/options)
	toDelete := make([]uuid.UUID, 0)
	for id := range existingIDs {
		if _, keep := wantIDs[id]; !keep {
			toDelete = append(toDelete, id)
		}
	}
	if len(toDelete) > 0 {
		if err := tx.Where("module_id IN ?", toDelete).Delete(&courseModel.CourseModuleModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus module")
		}
	}

	for i := range want {
		sm := &want[i]
		if _, ok := existingIDs[sm.ID]; ok {
			// update in place — id dipertahankan, position verbatim dari snapshot
			updates := map[string]any{
				"module_title":        sm.Title,
				"module_description":  sm.Description,
				"module_position":     sm.Position,
				"module_is_published": sm.IsPublished,
			}
			if err := tx.Model(&courseModel.CourseModuleModel{}).
				Where("module_id = ?", sm.ID).
				Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui module")
			}
		} else {
			// identity-preserving insert: PK dari snapshot, bukan generate baru
			row := courseModel.CourseModuleModel{
				ModuleID:          sm.ID,
				ModuleCourseID:    courseID,
				ModuleTitle:       sm.Title,
				ModuleDescription: sm.Description,
				ModulePosition:    sm.Position,
				ModuleIsPublished: sm.IsPublished,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat module")
			}
		}

		if err := reconcileLessons(tx, sm.ID, sm.Lessons); err != nil {
			return err
		}
		if err := reconcileQuizzes(tx, sm.ID, sm.Quizzes); err != nil {
			return err
		}
	}
	return nil
}

func reconcileLessons(tx *gorm.DB, moduleID uuid.UUID, want []dto.SnapshotLesson) error {
	var existing []courseModel.CourseLessonModel
	if err := tx.Where("lesson_module_id = ?", moduleID).Find(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca lessons live")
	}

	existingIDs := make(map[uuid.UUID]struct{}, len(existing))
	for i := range existing {
		existingIDs[existing[i].LessonID] = struct{}{}
	}
	wantIDs := make(map[uuid.UUID]struct{}, len(want))
	for i := range want {
		wantIDs[want[i].ID] = struct{}{}
	}

	toDelete := make([]uuid.UUID, 0)
	for id := range existingIDs {
		if _, keep := wantIDs[id]; !keep {
			toDelete = append(toDelete, id)
		}
	}
	if len(toDelete) > 0 {
		if err := tx.Where("lesson_id IN ?", toDelete).Delete(&courseModel.CourseLessonModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus lesson")
		}
	}

	for i := range want {
		sl := &want[i]
		if _, ok := existingIDs[sl.ID]; ok {
			updates := map[string]any{
				"lesson_title":      sl.Title,
				"lesson_position":   sl.Position,
				"lesson_is_preview": sl.IsPreview,
			}
			if err := tx.Model(&courseModel.CourseLessonModel{}).
				Where("lesson_id = ?", sl.ID).
				Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui lesson")
			}
		} else {
			row := courseModel.CourseLessonModel{
				LessonID:        sl.ID,
				LessonModuleID:  moduleID,
				LessonTitle:     sl.Title,
				LessonPosition:  sl.Position,
				LessonIsPreview: sl.IsPreview,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat lesson")
			}
		}

		if err := reconcileLessonContent(tx, sl.ID, sl.Content); err != nil {
			return err
		}
	}
	return nil
}

// reconcileLessonContent: content 1:1 mengikuti state lesson di snapshot.
// Ada di snapshot → upsert keyed lesson_id; tidak ada → hapus row live (jika ada).
func reconcileLessonContent(tx *gorm.DB, lessonID uuid.UUID, want *dto.SnapshotLessonContent) error {
	if want == nil {
		if err := tx.Where("lesson_content_lesson_id = ?", lessonID).
			Delete(&courseModel.LessonContentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus lesson content")
		}
		return nil
	}

	row := courseModel.LessonContentModel{
		LessonContentID:          uuid.New(),
		LessonContentLessonID:    lessonID,
		LessonContentBody:        want.Body,
		LessonContentVideoURL:    want.VideoURL,
		LessonContentDurationSec: want.DurationSec,
		LessonContentAttachments: dto.EncodeJSONList(want.Attachments),
		LessonContentResources:   dto.EncodeJSONList(want.Resources),
	}
	if err := tx.Clauses(clause.OnConflict{
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
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal upsert lesson content")
	}
	return nil
}

func reconcileQuizzes(tx *gorm.DB, moduleID uuid.UUID, want []dto.SnapshotQuiz) error {
	var existing []courseModel.CourseQuizModel
	if err := tx.Where("quiz_module_id = ?", moduleID).Find(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca quizzes live")
	}

	existingIDs := make(map[uuid.UUID]struct{}, len(existing))
	for i := range existing {
		existingIDs[existing[i].QuizID] = struct{}{}
	}
	wantIDs := make(map[uuid.UUID]struct{}, len(want))
	for i := range want {
		wantIDs[want[i].ID] = struct{}{}
	}

	toDelete := make([]uuid.UUID, 0)
	for id := range existingIDs {
		if _, keep := wantIDs[id]; !keep {
			toDelete = append(toDelete, id)
		}
	}
	if len(toDelete) > 0 {
		if err := tx.Where("quiz_id IN ?", toDelete).Delete(&courseModel.CourseQuizModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus quiz")
		}
	}

	for i := range want {
		sq := &want[i]
		if _, ok := existingIDs[sq.ID]; ok {
			updates := map[string]any{
				"quiz_title":        sq.Title,
				"quiz_description":  sq.Description,
				"quiz_position":     sq.Position,
				"quiz_is_published": sq.IsPublished,
			}
			if err := tx.Model(&courseModel.CourseQuizModel{}).
				Where("quiz_id = ?", sq.ID).
				Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui quiz")
			}
		} else {
			row := courseModel.CourseQuizModel{
				QuizID:          sq.ID,
				QuizModuleID:    moduleID,
				QuizTitle:       sq.Title,
				QuizDescription: sq.Description,
				QuizPosition:    sq.Position,
				QuizIsPublished: sq.IsPublished,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat quiz")
			}
		}

		if err := reconcileQuestions(tx, sq.ID, sq.Questions); err != nil {
			return err
		}
	}
	return nil
}

func reconcileQuestions(tx *gorm.DB, quizID uuid.UUID, want []dto.SnapshotQuestion) error {
	var existing []courseModel.QuizQuestionModel
	if err := tx.Where("question_quiz_id = ?", quizID).Find(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca questions live")
	}

	existingIDs := make(map[uuid.UUID]struct{}, len(existing))
	for i := range existing {
		existingIDs[existing[i].QuestionID] = struct{}{}
	}
	wantIDs := make(map[uuid.UUID]struct{}, len(want))
	for i := range want {
		wantIDs[want[i].ID] = struct{}{}
	}

	toDelete := make([]uuid.UUID, 0)
	for id := range existingIDs {
		if _, keep := wantIDs[id]; !keep {
			toDelete = append(toDelete, id)
		}
	}
	if len(toDelete) > 0 {
		if err := tx.Where("question_id IN ?", toDelete).Delete(&courseModel.QuizQuestionModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus question")
		}
	}

	for i := range want {
		sx := &want[i]
		if _, ok := existingIDs[sx.ID]; ok {
			updates := map[string]any{
				"question_text":     sx.Text,
				"question_position": sx.Position,
				"question_points":   sx.Points,
			}
			if err := tx.Model(&courseModel.QuizQuestionModel{}).
				Where("question_id = ?", sx.ID).
				Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui question")
			}
		} else {
			row := courseModel.QuizQuestionModel{
				QuestionID:       sx.ID,
				QuestionQuizID:   quizID,
				QuestionText:     sx.Text,
				QuestionPosition: sx.Position,
				QuestionPoints:   sx.Points,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat question")
			}
		}

		if err := reconcileOptions(tx, sx.ID, sx.Options); err != nil {
			return err
		}
	}
	return nil
}

func reconcileOptions(tx *gorm.DB, questionID uuid.UUID, want []dto.SnapshotOption) error {
	var existing []courseModel.QuizQuestionOptionModel
	if err := tx.Where("option_question_id = ?", questionID).Find(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca options live")
	}

	existingIDs := make(map[uuid.UUID]struct{}, len(existing))
	for i := range existing {
		existingIDs[existing[i].OptionID] = struct{}{}
	}
	wantIDs := make(map[uuid.UUID]struct{}, len(want))
	for i := range want {
		wantIDs[want[i].ID] = struct{}{}
	}

	toDelete := make([]uuid.UUID, 0)
	for id := range existingIDs {
		if _, keep := wantIDs[id]; !keep {
			toDelete = append(toDelete, id)
		}
	}
	if len(toDelete) > 0 {
		if err := tx.Where("option_id IN ?", toDelete).Delete(&courseModel.QuizQuestionOptionModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus option")
		}
	}

	for i := range want {
		so := &want[i]
		if _, ok := existingIDs[so.ID]; ok {
			updates := map[string]any{
				"option_text":       so.Text,
				"option_position":   so.Position,
				"option_is_correct": so.IsCorrect,
			}
			if err := tx.Model(&courseModel.QuizQuestionOptionModel{}).
				Where("option_id = ?", so.ID).
				Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui option")
			}
		} else {
			row := courseModel.QuizQuestionOptionModel{
				OptionID:         so.ID,
				OptionQuestionID: questionID,
				OptionText:       so.Text,
				OptionPosition:   so.Position,
				OptionIsCorrect:  so.IsCorrect,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat option")
			}
		}
	}
	return nil
}
