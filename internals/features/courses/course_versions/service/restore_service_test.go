// file: internals/features/courses/course_versions/service/restore_service_test.go
package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
	dto "kursusku_backend/internals/features/courses/course_versions/dto"
	model "kursusku_backend/internals/features/courses/course_versions/model"
)

func TestRestoreRoundTripIsNoOp(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	res, err := NewRestoreService(db).Restore(ctx, s.Course.CourseID, v.CourseVersionID, s.InstructorID)
	require.NoError(t, err)
	require.Equal(t, s.Course.CourseID, res.CourseID)
	require.Equal(t, v.CourseVersionID, res.RestoredVersionID)
	require.NotEqual(t, uuid.Nil, res.BackupVersionID)

	// Tree identik: jumlah row dan id tidak berubah
	require.EqualValues(t, 2, countRows(t, db, &courseModel.CourseModuleModel{}))
	require.EqualValues(t, 2, countRows(t, db, &courseModel.CourseLessonModel{}))
	require.EqualValues(t, 1, countRows(t, db, &courseModel.LessonContentModel{}))
	require.EqualValues(t, 1, countRows(t, db, &courseModel.CourseQuizModel{}))
	require.EqualValues(t, 1, countRows(t, db, &courseModel.QuizQuestionModel{}))
	require.EqualValues(t, 2, countRows(t, db, &courseModel.QuizQuestionOptionModel{}))

	var course courseModel.CourseModel
	require.NoError(t, db.First(&course, "course_id = ?", s.Course.CourseID).Error)
	require.Equal(t, "Belajar Go Dasar", course.CourseTitle)
	require.True(t, course.CourseIsPublished)

	var m1 courseModel.CourseModuleModel
	require.NoError(t, db.First(&m1, "module_id = ?", s.M1.ModuleID).Error)
	require.Equal(t, "Pengenalan", m1.ModuleTitle)

	// Restore sendiri tercatat sebagai backup version baru
	require.EqualValues(t, 2, countRows(t, db, &model.CourseVersionModel{}))
}

func TestRestoreRevertsScalarEditsInPlace(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	// Mutasi setelah versi dibuat
	require.NoError(t, db.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", s.Course.CourseID).
		Updates(map[string]any{"course_title": "Judul Baru", "course_price": 999999}).Error)
	require.NoError(t, db.Model(&courseModel.CourseModuleModel{}).
		Where("module_id = ?", s.M1.ModuleID).
		Updates(map[string]any{"module_title": "Diubah", "module_position": 7}).Error)
	require.NoError(t, db.Model(&courseModel.QuizQuestionOptionModel{}).
		Where("option_id = ?", s.O1.OptionID).
		Update("option_is_correct", false).Error)

	_, err = NewRestoreService(db).Restore(ctx, s.Course.CourseID, v.CourseVersionID, s.InstructorID)
	require.NoError(t, err)

	var course courseModel.CourseModel
	require.NoError(t, db.First(&course, "course_id = ?", s.Course.CourseID).Error)
	require.Equal(t, "Belajar Go Dasar", course.CourseTitle)
	require.EqualValues(t, 150000, course.CoursePrice)

	// id module tetap sama — update in place, bukan delete+create
	var m1 courseModel.CourseModuleModel
	require.NoError(t, db.First(&m1, "module_id = ?", s.M1.ModuleID).Error)
	require.Equal(t, "Pengenalan", m1.ModuleTitle)
	require.Equal(t, 0, m1.ModulePosition)

	var o1 courseModel.QuizQuestionOptionModel
	require.NoError(t, db.First(&o1, "option_id = ?", s.O1.OptionID).Error)
	require.True(t, o1.OptionIsCorrect)
}

func TestRestoreDeletesRowsAddedAfterVersion(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	// Module baru + lesson di bawahnya, dibuat SETELAH versi
	m3 := courseModel.CourseModuleModel{
		ModuleID:       uuid.New(),
		ModuleCourseID: s.Course.CourseID,
		ModuleTitle:    "Bonus",
		ModulePosition: 2,
	}
	require.NoError(t, db.Create(&m3).Error)
	l3 := courseModel.CourseLessonModel{
		LessonID:       uuid.New(),
		LessonModuleID: m3.ModuleID,
		LessonTitle:    "Materi Bonus",
	}
	require.NoError(t, db.Create(&l3).Error)

	_, err = NewRestoreService(db).Restore(ctx, s.Course.CourseID, v.CourseVersionID, s.InstructorID)
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&courseModel.CourseModuleModel{}).
		Where("module_id = ?", m3.ModuleID).Count(&n).Error)
	require.Zero(t, n)
	// cascade: lesson bonus ikut hilang
	require.NoError(t, db.Model(&courseModel.CourseLessonModel{}).
		Where("lesson_id = ?", l3.LessonID).Count(&n).Error)
	require.Zero(t, n)

	require.EqualValues(t, 2, countRows(t, db, &courseModel.CourseModuleModel{}))
	require.EqualValues(t, 2, countRows(t, db, &courseModel.CourseLessonModel{}))
}

func TestRestoreRecreatesDeletedSubtreeWithOriginalIDs(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	// Hapus seluruh subtree M1 (lesson, content, quiz, question, options ikut)
	require.NoError(t, db.Where("module_id = ?", s.M1.ModuleID).
		Delete(&courseModel.CourseModuleModel{}).Error)
	require.EqualValues(t, 1, countRows(t, db, &courseModel.CourseModuleModel{}))
	require.EqualValues(t, 0, countRows(t, db, &courseModel.QuizQuestionOptionModel{}))

	_, err = NewRestoreService(db).Restore(ctx, s.Course.CourseID, v.CourseVersionID, s.InstructorID)
	require.NoError(t, err)

	// Identity-preserving insert: id lama kembali, bukan id baru
	var m1 courseModel.CourseModuleModel
	require.NoError(t, db.First(&m1, "module_id = ?", s.M1.ModuleID).Error)
	require.Equal(t, "Pengenalan", m1.ModuleTitle)

	var l1 courseModel.CourseLessonModel
	require.NoError(t, db.First(&l1, "lesson_id = ?", s.L1.LessonID).Error)
	require.Equal(t, "Instalasi", l1.LessonTitle)
	require.True(t, l1.LessonIsPreview)

	var content courseModel.LessonContentModel
	require.NoError(t, db.First(&content, "lesson_content_lesson_id = ?", s.L1.LessonID).Error)
	require.NotNil(t, content.LessonContentBody)
	require.Equal(t, "Unduh dari go.dev", *content.LessonContentBody)

	var x1 courseModel.QuizQuestionModel
	require.NoError(t, db.First(&x1, "question_id = ?", s.X1.QuestionID).Error)
	require.EqualValues(t, 2, x1.QuestionPoints)

	var o1 courseModel.QuizQuestionOptionModel
	require.NoError(t, db.First(&o1, "option_id = ?", s.O1.OptionID).Error)
	require.True(t, o1.OptionIsCorrect)
	require.EqualValues(t, 2, countRows(t, db, &courseModel.QuizQuestionOptionModel{}))
}

func TestRestoreOptionSetDifference(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	// Versi menyimpan opsi {O1 "go", O2 "async"}
	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	// Live drift: O2 dihapus, O3 ditambah, O1 diedit
	require.NoError(t, db.Where("option_id = ?", s.O2.OptionID).
		Delete(&courseModel.QuizQuestionOptionModel{}).Error)
	o3 := courseModel.QuizQuestionOptionModel{
		OptionID:         uuid.New(),
		OptionQuestionID: s.X1.QuestionID,
		OptionText:       "spawn",
		OptionPosition:   2,
	}
	require.NoError(t, db.Create(&o3).Error)
	require.NoError(t, db.Model(&courseModel.QuizQuestionOptionModel{}).
		Where("option_id = ?", s.O1.OptionID).
		Update("option_text", "golang").Error)

	_, err = NewRestoreService(db).Restore(ctx, s.Course.CourseID, v.CourseVersionID, s.InstructorID)
	require.NoError(t, err)

	var opts []courseModel.QuizQuestionOptionModel
	require.NoError(t, db.Where("option_question_id = ?", s.X1.QuestionID).
		Order("option_position ASC").Find(&opts).Error)
	require.Len(t, opts, 2)
	require.Equal(t, s.O1.OptionID, opts[0].OptionID)
	require.Equal(t, "go", opts[0].OptionText)
	require.Equal(t, s.O2.OptionID, opts[1].OptionID)
	require.Equal(t, "async", opts[1].OptionText)
}

func TestRestoreLessonContentFollowsSnapshot(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	// Versi: L1 punya content, L2 tidak
	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	// Drift: content L1 dihapus, L2 diberi content
	require.NoError(t, db.Where("lesson_content_lesson_id = ?", s.L1.LessonID).
		Delete(&courseModel.LessonContentModel{}).Error)
	l2Content := courseModel.LessonContentModel{
		LessonContentID:       uuid.New(),
		LessonContentLessonID: s.L2.LessonID,
		LessonContentBody:     strPtr("draft"),
	}
	require.NoError(t, db.Create(&l2Content).Error)

	_, err = NewRestoreService(db).Restore(ctx, s.Course.CourseID, v.CourseVersionID, s.InstructorID)
	require.NoError(t, err)

	var c1 courseModel.LessonContentModel
	require.NoError(t, db.First(&c1, "lesson_content_lesson_id = ?", s.L1.LessonID).Error)
	require.NotNil(t, c1.LessonContentDurationSec)
	require.Equal(t, 420, *c1.LessonContentDurationSec)

	var n int64
	require.NoError(t, db.Model(&courseModel.LessonContentModel{}).
		Where("lesson_content_lesson_id = ?", s.L2.LessonID).Count(&n).Error)
	require.Zero(t, n)
}

func TestRestoreMalformedSnapshotFailsBeforeAnyWrite(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	// Dokumen tanpa course_data → harus ditolak 422 sebelum mutasi
	bad := model.CourseVersionModel{
		CourseVersionID:        uuid.New(),
		CourseVersionCourseID:  s.Course.CourseID,
		CourseVersionTitle:     "Rusak",
		CourseVersionCreatedBy: s.InstructorID,
		CourseVersionSnapshot:  datatypes.JSON(`{"modules":[]}`),
	}
	require.NoError(t, db.Create(&bad).Error)

	require.NoError(t, db.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", s.Course.CourseID).
		Update("course_title", "Masih Hidup").Error)

	_, err := NewRestoreService(db).Restore(ctx, s.Course.CourseID, bad.CourseVersionID, s.InstructorID)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)

	// Tidak ada mutasi: judul tetap, tidak ada backup version baru
	var course courseModel.CourseModel
	require.NoError(t, db.First(&course, "course_id = ?", s.Course.CourseID).Error)
	require.Equal(t, "Masih Hidup", course.CourseTitle)
	require.EqualValues(t, 1, countRows(t, db, &model.CourseVersionModel{}))
	require.EqualValues(t, 2, countRows(t, db, &courseModel.CourseModuleModel{}))
}

func TestRestoreRollsBackWhenReconcileFails(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	// Dokumen lolos validasi tapi gagal di tengah transaksi:
	// dua module baru memakai lesson id yang sama → insert kedua
	// melanggar PK. Seluruh transaksi harus batal, termasuk backup.
	dupLesson := uuid.New()
	doc := dto.SnapshotDocument{
		CourseData: &dto.SnapshotCourseData{
			Title:            "Versi Korup",
			Price:            0,
			Requirements:     []string{},
			LearningOutcomes: []string{},
			TargetAudience:   []string{},
		},
		Modules: []dto.SnapshotModule{
			{
				ID:    uuid.New(),
				Title: "A",
				Lessons: []dto.SnapshotLesson{
					{ID: dupLesson, Title: "Sama"},
				},
			},
			{
				ID:       uuid.New(),
				Title:    "B",
				Position: 1,
				Lessons: []dto.SnapshotLesson{
					{ID: dupLesson, Title: "Sama Lagi"},
				},
			},
		},
	}
	raw, err := json.Marshal(&doc)
	require.NoError(t, err)

	v := model.CourseVersionModel{
		CourseVersionID:        uuid.New(),
		CourseVersionCourseID:  s.Course.CourseID,
		CourseVersionTitle:     "Versi Korup",
		CourseVersionCreatedBy: s.InstructorID,
		CourseVersionSnapshot:  datatypes.JSON(raw),
	}
	require.NoError(t, db.Create(&v).Error)

	_, err = NewRestoreService(db).Restore(ctx, s.Course.CourseID, v.CourseVersionID, s.InstructorID)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusInternalServerError, fe.Code)

	// Rollback total: tree live dan version store tidak berubah
	var course courseModel.CourseModel
	require.NoError(t, db.First(&course, "course_id = ?", s.Course.CourseID).Error)
	require.Equal(t, "Belajar Go Dasar", course.CourseTitle)

	var m1 courseModel.CourseModuleModel
	require.NoError(t, db.First(&m1, "module_id = ?", s.M1.ModuleID).Error)
	require.EqualValues(t, 2, countRows(t, db, &courseModel.CourseModuleModel{}))
	require.EqualValues(t, 1, countRows(t, db, &model.CourseVersionModel{}))
}

func TestRestoreVersionFromOtherCourseNotFound(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	otherCourse := uuid.New()
	_, err = NewRestoreService(db).Restore(ctx, otherCourse, v.CourseVersionID, s.InstructorID)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestRestoreWritesBackupOfPreRestoreState(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	// State hidup berubah sebelum restore
	require.NoError(t, db.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", s.Course.CourseID).
		Update("course_title", "Sebelum Restore").Error)

	res, err := NewRestoreService(db).Restore(ctx, s.Course.CourseID, v.CourseVersionID, s.InstructorID)
	require.NoError(t, err)

	var backup model.CourseVersionModel
	require.NoError(t, db.First(&backup, "course_version_id = ?", res.BackupVersionID).Error)
	require.Equal(t, "Sebelum pulihkan: Rilis 1", backup.CourseVersionTitle)
	require.False(t, backup.CourseVersionIsAutosave)

	// Backup memuat state PRA-restore, jadi restore bisa di-undo
	backupDoc, err := dto.DecodeSnapshot(backup.CourseVersionSnapshot)
	require.NoError(t, err)
	require.Equal(t, "Sebelum Restore", backupDoc.CourseData.Title)

	// Undo: restore ke backup mengembalikan judul pra-restore
	_, err = NewRestoreService(db).Restore(ctx, s.Course.CourseID, res.BackupVersionID, s.InstructorID)
	require.NoError(t, err)
	var course courseModel.CourseModel
	require.NoError(t, db.First(&course, "course_id = ?", s.Course.CourseID).Error)
	require.Equal(t, "Sebelum Restore", course.CourseTitle)
}

func TestRestoreWritesAuditLog(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	_, err = NewRestoreService(db).Restore(ctx, s.Course.CourseID, v.CourseVersionID, s.InstructorID)
	require.NoError(t, err)

	var logs []model.CourseAuditLogModel
	require.NoError(t, db.Where("audit_course_id = ?", s.Course.CourseID).Find(&logs).Error)
	require.Len(t, logs, 1)
	require.Equal(t, model.AuditActionRestoreVersion, logs[0].AuditAction)
	require.Equal(t, s.InstructorID, logs[0].AuditActorID)
	require.NotNil(t, logs[0].AuditTargetID)
	require.Equal(t, v.CourseVersionID, *logs[0].AuditTargetID)
}
