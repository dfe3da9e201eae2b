// file: internals/features/courses/course_versions/service/version_store_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	helper "kursusku_backend/internals/helpers"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
	dto "kursusku_backend/internals/features/courses/course_versions/dto"
)

func TestBuildSnapshotCapturesWholeTree(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)

	doc, err := BuildSnapshot(context.Background(), db, s.Course.CourseID)
	require.NoError(t, err)

	require.NotNil(t, doc.CourseData)
	require.Equal(t, "Belajar Go Dasar", doc.CourseData.Title)
	require.Equal(t, []string{"laptop"}, doc.CourseData.Requirements)

	// Modules urut sesuai position
	require.Len(t, doc.Modules, 2)
	require.Equal(t, s.M1.ModuleID, doc.Modules[0].ID)
	require.Equal(t, s.M2.ModuleID, doc.Modules[1].ID)

	m1 := doc.Modules[0]
	require.Len(t, m1.Lessons, 1)
	require.Equal(t, s.L1.LessonID, m1.Lessons[0].ID)
	require.NotNil(t, m1.Lessons[0].Content)
	require.Equal(t, "Unduh dari go.dev", *m1.Lessons[0].Content.Body)
	require.Len(t, m1.Lessons[0].Content.Attachments, 1)
	require.Equal(t, "cheatsheet", m1.Lessons[0].Content.Attachments[0].Name)

	require.Len(t, m1.Quizzes, 1)
	require.Equal(t, s.Q1.QuizID, m1.Quizzes[0].ID)
	require.Len(t, m1.Quizzes[0].Questions, 1)
	q := m1.Quizzes[0].Questions[0]
	require.Equal(t, s.X1.QuestionID, q.ID)
	require.Len(t, q.Options, 2)
	require.True(t, q.Options[0].IsCorrect)
	require.False(t, q.Options[1].IsCorrect)

	// L2 tanpa content → nil, bukan struct kosong
	m2 := doc.Modules[1]
	require.Len(t, m2.Lessons, 1)
	require.Nil(t, m2.Lessons[0].Content)
	require.Empty(t, m2.Quizzes)
}

func TestBuildSnapshotCourseNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := BuildSnapshot(context.Background(), db, uuid.New())
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestCreateVersionStoresDecodableSnapshot(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	desc := "sebelum revisi besar"
	v, err := CreateVersion(ctx, db, s.Course.CourseID, "  Rilis 1  ", &desc, false, s.InstructorID)
	require.NoError(t, err)
	require.Equal(t, "Rilis 1", v.CourseVersionTitle)
	require.NotNil(t, v.CourseVersionDescription)
	require.Equal(t, s.InstructorID, v.CourseVersionCreatedBy)

	doc, err := dto.DecodeSnapshot(v.CourseVersionSnapshot)
	require.NoError(t, err)
	require.Equal(t, "Belajar Go Dasar", doc.CourseData.Title)
	require.Len(t, doc.Modules, 2)
}

func TestCreateVersionSnapshotIsImmutableCopy(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	// Edit live SETELAH capture — dokumen tersimpan tidak boleh berubah
	require.NoError(t, db.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", s.Course.CourseID).
		Update("course_title", "Judul Lain").Error)

	reloaded, err := GetVersion(ctx, db, s.Course.CourseID, v.CourseVersionID)
	require.NoError(t, err)
	doc, err := dto.DecodeSnapshot(reloaded.CourseVersionSnapshot)
	require.NoError(t, err)
	require.Equal(t, "Belajar Go Dasar", doc.CourseData.Title)
}

func TestCreateVersionDefaultsEmptyTitle(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)

	v, err := CreateVersion(context.Background(), db, s.Course.CourseID, "   ", nil, true, s.InstructorID)
	require.NoError(t, err)
	require.Equal(t, "Versi tanpa judul", v.CourseVersionTitle)
	require.True(t, v.CourseVersionIsAutosave)
}

func TestGetVersionRequiresMatchingCourse(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)

	// course lain + version id valid → tetap 404
	_, err = GetVersion(ctx, db, uuid.New(), v.CourseVersionID)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestListVersionsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	s := seedCourseTree(t, db)
	ctx := context.Background()

	v1, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 1", nil, false, s.InstructorID)
	require.NoError(t, err)
	v2, err := CreateVersion(ctx, db, s.Course.CourseID, "Rilis 2", nil, false, s.InstructorID)
	require.NoError(t, err)

	// Urutan stabil meski created_at identik (resolusi timestamp sqlite)
	require.NoError(t, db.Model(v1).Update("course_version_created_at", "2026-01-01 10:00:00").Error)
	require.NoError(t, db.Model(v2).Update("course_version_created_at", "2026-01-02 10:00:00").Error)

	rows, total, err := ListVersions(ctx, db, s.Course.CourseID, helper.Paging{Offset: 0, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	require.Equal(t, v2.CourseVersionID, rows[0].CourseVersionID)
	require.Equal(t, v1.CourseVersionID, rows[1].CourseVersionID)

	// Paging
	rows, total, err = ListVersions(ctx, db, s.Course.CourseID, helper.Paging{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, rows, 1)
	require.Equal(t, v1.CourseVersionID, rows[0].CourseVersionID)
}

func TestLookupAuthorNameBestEffort(t *testing.T) {
	db := newTestDB(t)

	userID := uuid.New()
	require.NoError(t, db.Exec(
		"INSERT INTO users (user_id, user_name) VALUES (?, ?)",
		userID.String(), "Pak Budi",
	).Error)

	name := LookupAuthorName(context.Background(), db, userID)
	require.NotNil(t, name)
	require.Equal(t, "Pak Budi", *name)

	require.Nil(t, LookupAuthorName(context.Background(), db, uuid.New()))
}
