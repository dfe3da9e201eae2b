// file: internals/features/courses/course_versions/dto/snapshot_dto_test.go
package dto

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
)

func validSnapshotJSON() string {
	return fmt.Sprintf(`{
		"course_data": {
			"title": "Kursus Uji",
			"price": 50000,
			"is_published": true,
			"requirements": ["laptop"],
			"learning_outcomes": [],
			"target_audience": []
		},
		"modules": [
			{
				"id": %q,
				"title": "Module 1",
				"position": 0,
				"is_published": true,
				"lessons": [
					{
						"id": %q,
						"title": "Lesson 1",
						"position": 0,
						"is_preview": false,
						"content": {"body": "isi", "attachments": [], "resources": []}
					}
				],
				"quizzes": [
					{
						"id": %q,
						"title": "Quiz 1",
						"position": 1,
						"is_published": false,
						"questions": [
							{
								"id": %q,
								"text": "Soal?",
								"position": 0,
								"points": 2,
								"options": [
									{"id": %q, "text": "A", "position": 0, "is_correct": true}
								]
							}
						]
					}
				]
			}
		]
	}`, uuid.New().String(), uuid.New().String(), uuid.New().String(), uuid.New().String(), uuid.New().String())
}

func TestDecodeSnapshotValidDocument(t *testing.T) {
	doc, err := DecodeSnapshot(datatypes.JSON(validSnapshotJSON()))
	require.NoError(t, err)
	require.Equal(t, "Kursus Uji", doc.CourseData.Title)
	require.Len(t, doc.Modules, 1)
	require.Len(t, doc.Modules[0].Lessons, 1)
	require.NotNil(t, doc.Modules[0].Lessons[0].Content)
	require.Len(t, doc.Modules[0].Quizzes[0].Questions[0].Options, 1)
}

func TestDecodeSnapshotRejectsBrokenDocuments(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"kosong", ""},
		{"bukan json", "{{{"},
		{"tanpa course_data", `{"modules":[]}`},
		{"course_data tanpa title", `{"course_data":{"price":0},"modules":[]}`},
		{"module tanpa id", fmt.Sprintf(
			`{"course_data":{"title":"X"},"modules":[{"id":%q,"title":"M"}]}`, uuid.Nil.String())},
		{"lesson tanpa id", fmt.Sprintf(
			`{"course_data":{"title":"X"},"modules":[{"id":%q,"title":"M","lessons":[{"id":%q,"title":"L"}]}]}`,
			uuid.New().String(), uuid.Nil.String())},
		{"option tanpa id", fmt.Sprintf(
			`{"course_data":{"title":"X"},"modules":[{"id":%q,"title":"M","quizzes":[{"id":%q,"title":"Q","questions":[{"id":%q,"text":"S","options":[{"id":%q,"text":"A"}]}]}]}]}`,
			uuid.New().String(), uuid.New().String(), uuid.New().String(), uuid.Nil.String())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSnapshot(datatypes.JSON(tc.raw))
			require.Error(t, err)
		})
	}
}

func TestApplyToCourseModelOverwritesScalarsKeepsID(t *testing.T) {
	id := uuid.New()
	instructor := uuid.New()
	m := courseModel.CourseModel{
		CourseID:           id,
		CourseInstructorID: instructor,
		CourseTitle:        "Lama",
		CourseSlug:         strPtr("lama"),
		CoursePrice:        100,
		CourseIsPublished:  false,
	}

	cd := SnapshotCourseData{
		Title:            "Baru",
		Description:      strPtr("deskripsi baru"),
		Price:            250,
		IsPublished:      true,
		Requirements:     []string{"niat"},
		LearningOutcomes: []string{},
		TargetAudience:   []string{},
	}
	cd.ApplyToCourseModel(&m)

	require.Equal(t, id, m.CourseID)
	require.Equal(t, instructor, m.CourseInstructorID)
	require.Equal(t, "Baru", m.CourseTitle)
	require.Nil(t, m.CourseSlug) // snapshot tanpa slug → slug ikut kosong
	require.EqualValues(t, 250, m.CoursePrice)
	require.True(t, m.CourseIsPublished)
	require.Equal(t, []string{"niat"}, DecodeStringList(m.CourseRequirements))
}

func TestSnapshotCourseDataFromModelIsDeepCopy(t *testing.T) {
	slug := "asli"
	m := courseModel.CourseModel{
		CourseTitle:        "Kursus",
		CourseSlug:         &slug,
		CourseRequirements: datatypes.JSON(`["a"]`),
	}

	cd := SnapshotCourseDataFromModel(&m)
	*m.CourseSlug = "berubah"

	require.NotNil(t, cd.Slug)
	require.Equal(t, "asli", *cd.Slug)
	require.Equal(t, []string{"a"}, cd.Requirements)
}

func strPtr(s string) *string { return &s }
