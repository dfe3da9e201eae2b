// file: internals/features/courses/course_versions/service/testdb_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
)

// Skema test ditulis sebagai DDL eksplisit (bukan AutoMigrate):
// default gen_random_uuid() di tag model adalah ekspresi Postgres,
// sqlite menolaknya saat CREATE TABLE. Semua PK di-set dari aplikasi
// jadi default memang tidak dibutuhkan di sini.
var testSchema = []string{
	`CREATE TABLE courses (
		course_id TEXT PRIMARY KEY,
		course_instructor_id TEXT NOT NULL,
		course_title TEXT NOT NULL,
		course_slug TEXT UNIQUE,
		course_description TEXT,
		course_price REAL NOT NULL DEFAULT 0,
		course_thumbnail_url TEXT,
		course_level TEXT,
		course_is_published BOOLEAN NOT NULL DEFAULT 0,
		course_requirements TEXT,
		course_learning_outcomes TEXT,
		course_target_audience TEXT,
		course_created_at DATETIME NOT NULL,
		course_updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE course_modules (
		module_id TEXT PRIMARY KEY,
		module_course_id TEXT NOT NULL REFERENCES courses(course_id) ON DELETE CASCADE,
		module_title TEXT NOT NULL,
		module_description TEXT,
		module_position INTEGER NOT NULL DEFAULT 0,
		module_is_published BOOLEAN NOT NULL DEFAULT 0,
		module_created_at DATETIME NOT NULL,
		module_updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE course_lessons (
		lesson_id TEXT PRIMARY KEY,
		lesson_module_id TEXT NOT NULL REFERENCES course_modules(module_id) ON DELETE CASCADE,
		lesson_title TEXT NOT NULL,
		lesson_position INTEGER NOT NULL DEFAULT 0,
		lesson_is_preview BOOLEAN NOT NULL DEFAULT 0,
		lesson_created_at DATETIME NOT NULL,
		lesson_updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE lesson_contents (
		lesson_content_id TEXT PRIMARY KEY,
		lesson_content_lesson_id TEXT NOT NULL UNIQUE REFERENCES course_lessons(lesson_id) ON DELETE CASCADE,
		lesson_content_body TEXT,
		lesson_content_video_url TEXT,
		lesson_content_duration_sec INTEGER,
		lesson_content_attachments TEXT,
		lesson_content_resources TEXT,
		lesson_content_created_at DATETIME NOT NULL,
		lesson_content_updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE course_quizzes (
		quiz_id TEXT PRIMARY KEY,
		quiz_module_id TEXT NOT NULL REFERENCES course_modules(module_id) ON DELETE CASCADE,
		quiz_title TEXT NOT NULL,
		quiz_description TEXT,
		quiz_position INTEGER NOT NULL DEFAULT 0,
		quiz_is_published BOOLEAN NOT NULL DEFAULT 0,
		quiz_created_at DATETIME NOT NULL,
		quiz_updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE quiz_questions (
		question_id TEXT PRIMARY KEY,
		question_quiz_id TEXT NOT NULL REFERENCES course_quizzes(quiz_id) ON DELETE CASCADE,
		question_text TEXT NOT NULL,
		question_position INTEGER NOT NULL DEFAULT 0,
		question_points REAL NOT NULL DEFAULT 1,
		question_created_at DATETIME NOT NULL,
		question_updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE quiz_question_options (
		option_id TEXT PRIMARY KEY,
		option_question_id TEXT NOT NULL REFERENCES quiz_questions(question_id) ON DELETE CASCADE,
		option_text TEXT NOT NULL,
		option_position INTEGER NOT NULL DEFAULT 0,
		option_is_correct BOOLEAN NOT NULL DEFAULT 0,
		option_created_at DATETIME NOT NULL,
		option_updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE course_versions (
		course_version_id TEXT PRIMARY KEY,
		course_version_course_id TEXT NOT NULL,
		course_version_title TEXT NOT NULL,
		course_version_description TEXT,
		course_version_is_autosave BOOLEAN NOT NULL DEFAULT 0,
		course_version_created_by TEXT NOT NULL,
		course_version_snapshot TEXT NOT NULL,
		course_version_created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE course_audit_logs (
		audit_id TEXT PRIMARY KEY,
		audit_course_id TEXT NOT NULL,
		audit_actor_id TEXT NOT NULL,
		audit_action TEXT NOT NULL,
		audit_target_id TEXT,
		audit_note TEXT,
		audit_created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE users (
		user_id TEXT PRIMARY KEY,
		user_name TEXT
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// satu koneksi supaya :memory: dan PRAGMA konsisten sepanjang test
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	for _, ddl := range testSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// seedCourseTree menanam course lengkap 2 module:
//
//	M1: lesson L1 (+content), quiz Q1 → question X1 → options O1 (benar), O2
//	M2: lesson L2 (tanpa content)
type seededTree struct {
	InstructorID uuid.UUID
	Course       courseModel.CourseModel
	M1, M2       courseModel.CourseModuleModel
	L1, L2       courseModel.CourseLessonModel
	L1Content    courseModel.LessonContentModel
	Q1           courseModel.CourseQuizModel
	X1           courseModel.QuizQuestionModel
	O1, O2       courseModel.QuizQuestionOptionModel
}

func seedCourseTree(t *testing.T, db *gorm.DB) *seededTree {
	t.Helper()

	s := &seededTree{InstructorID: uuid.New()}

	s.Course = courseModel.CourseModel{
		CourseID:               uuid.New(),
		CourseInstructorID:     s.InstructorID,
		CourseTitle:            "Belajar Go Dasar",
		CourseSlug:             strPtr("belajar-go-dasar"),
		CourseDescription:      strPtr("Kursus pengantar"),
		CoursePrice:            150000,
		CourseLevel:            strPtr("beginner"),
		CourseIsPublished:      true,
		CourseRequirements:     datatypes.JSON(`["laptop"]`),
		CourseLearningOutcomes: datatypes.JSON(`["paham goroutine"]`),
		CourseTargetAudience:   datatypes.JSON(`["pemula"]`),
	}
	require.NoError(t, db.Create(&s.Course).Error)

	s.M1 = courseModel.CourseModuleModel{
		ModuleID:          uuid.New(),
		ModuleCourseID:    s.Course.CourseID,
		ModuleTitle:       "Pengenalan",
		ModulePosition:    0,
		ModuleIsPublished: true,
	}
	s.M2 = courseModel.CourseModuleModel{
		ModuleID:       uuid.New(),
		ModuleCourseID: s.Course.CourseID,
		ModuleTitle:    "Lanjutan",
		ModulePosition: 1,
	}
	require.NoError(t, db.Create(&s.M1).Error)
	require.NoError(t, db.Create(&s.M2).Error)

	s.L1 = courseModel.CourseLessonModel{
		LessonID:        uuid.New(),
		LessonModuleID:  s.M1.ModuleID,
		LessonTitle:     "Instalasi",
		LessonPosition:  0,
		LessonIsPreview: true,
	}
	s.L2 = courseModel.CourseLessonModel{
		LessonID:       uuid.New(),
		LessonModuleID: s.M2.ModuleID,
		LessonTitle:    "Concurrency",
		LessonPosition: 0,
	}
	require.NoError(t, db.Create(&s.L1).Error)
	require.NoError(t, db.Create(&s.L2).Error)

	s.L1Content = courseModel.LessonContentModel{
		LessonContentID:          uuid.New(),
		LessonContentLessonID:    s.L1.LessonID,
		LessonContentBody:        strPtr("Unduh dari go.dev"),
		LessonContentVideoURL:    strPtr("https://video.example.com/instalasi"),
		LessonContentDurationSec: intPtr(420),
		LessonContentAttachments: datatypes.JSON(`[{"name":"cheatsheet","url":"https://files.example.com/cs.pdf"}]`),
		LessonContentResources:   datatypes.JSON(`[]`),
	}
	require.NoError(t, db.Create(&s.L1Content).Error)

	s.Q1 = courseModel.CourseQuizModel{
		QuizID:          uuid.New(),
		QuizModuleID:    s.M1.ModuleID,
		QuizTitle:       "Kuis Pengenalan",
		QuizPosition:    1,
		QuizIsPublished: true,
	}
	require.NoError(t, db.Create(&s.Q1).Error)

	s.X1 = courseModel.QuizQuestionModel{
		QuestionID:       uuid.New(),
		QuestionQuizID:   s.Q1.QuizID,
		QuestionText:     "Keyword untuk goroutine?",
		QuestionPosition: 0,
		QuestionPoints:   2,
	}
	require.NoError(t, db.Create(&s.X1).Error)

	s.O1 = courseModel.QuizQuestionOptionModel{
		OptionID:         uuid.New(),
		OptionQuestionID: s.X1.QuestionID,
		OptionText:       "go",
		OptionPosition:   0,
		OptionIsCorrect:  true,
	}
	s.O2 = courseModel.QuizQuestionOptionModel{
		OptionID:         uuid.New(),
		OptionQuestionID: s.X1.QuestionID,
		OptionText:       "async",
		OptionPosition:   1,
	}
	require.NoError(t, db.Create(&s.O1).Error)
	require.NoError(t, db.Create(&s.O2).Error)

	return s
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
