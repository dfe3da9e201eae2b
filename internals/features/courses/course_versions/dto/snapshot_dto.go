// file: internals/features/courses/course_versions/dto/snapshot_dto.go
package dto

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
)

/* ==============================
   Snapshot document (typed schema)

   Bentuk logis:
   { course_data: {...}, modules: [ {id, title, ..., lessons:[...], quizzes:[...]} ] }

   Dokumen ini self-contained: list fields yang di live store
   tersimpan sebagai JSONB sudah berupa native list di sini.
============================== */

type SnapshotDocument struct {
	CourseData *SnapshotCourseData `json:"course_data" validate:"required"`
	Modules    []SnapshotModule    `json:"modules" validate:"omitempty,dive"`
}

type SnapshotCourseData struct {
	Title            string   `json:"title" validate:"required"`
	Slug             *string  `json:"slug,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Price            float64  `json:"price"`
	ThumbnailURL     *string  `json:"thumbnail_url,omitempty"`
	Level            *string  `json:"level,omitempty"`
	IsPublished      bool     `json:"is_published"`
	Requirements     []string `json:"requirements"`
	LearningOutcomes []string `json:"learning_outcomes"`
	TargetAudience   []string `json:"target_audience"`
}

type SnapshotModule struct {
	ID          uuid.UUID        `json:"id" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	Description *string          `json:"description,omitempty"`
	Position    int              `json:"position"`
	IsPublished bool             `json:"is_published"`
	Lessons     []SnapshotLesson `json:"lessons" validate:"omitempty,dive"`
	Quizzes     []SnapshotQuiz   `json:"quizzes" validate:"omitempty,dive"`
}

type SnapshotLesson struct {
	ID        uuid.UUID              `json:"id" validate:"required"`
	Title     string                 `json:"title" validate:"required"`
	Position  int                    `json:"position"`
	IsPreview bool                   `json:"is_preview"`
	Content   *SnapshotLessonContent `json:"content,omitempty"`
}

type SnapshotLessonContent struct {
	Body        *string              `json:"body,omitempty"`
	VideoURL    *string              `json:"video_url,omitempty"`
	DurationSec *int                 `json:"duration_sec,omitempty"`
	Attachments []SnapshotAttachment `json:"attachments"`
	Resources   []SnapshotResource   `json:"resources"`
}

type SnapshotAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type SnapshotResource struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type SnapshotQuiz struct {
	ID          uuid.UUID          `json:"id" validate:"required"`
	Title       string             `json:"title" validate:"required"`
	Description *string            `json:"description,omitempty"`
	Position    int                `json:"position"`
	IsPublished bool               `json:"is_published"`
	Questions   []SnapshotQuestion `json:"questions" validate:"omitempty,dive"`
}

type SnapshotQuestion struct {
	ID       uuid.UUID        `json:"id" validate:"required"`
	Text     string           `json:"text" validate:"required"`
	Position int              `json:"position"`
	Points   float64          `json:"points"`
	Options  []SnapshotOption `json:"options" validate:"omitempty,dive"`
}

type SnapshotOption struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	Position  int       `json:"position"`
	IsCorrect bool      `json:"is_correct"`
}

/* ==============================
   Decode + validate (fail fast)
============================== */

var snapshotValidator = validator.New()

// DecodeSnapshot parse dokumen tersimpan menjadi schema bertipe.
// Gagal parse / shape tidak sesuai → error (dipetakan 422 oleh caller)
// SEBELUM ada mutasi apapun.
func DecodeSnapshot(raw datatypes.JSON) (*SnapshotDocument, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("snapshot kosong")
	}
	var doc SnapshotDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("snapshot tidak bisa diparse: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate memastikan semua entity di dokumen punya identifier.
// Identifier inilah yang dipertahankan reconciler, jadi uuid nil = dokumen rusak.
func (d *SnapshotDocument) Validate() error {
	if d.CourseData == nil {
		return fmt.Errorf("snapshot tanpa course_data")
	}
	if err := snapshotValidator.Struct(d); err != nil {
		return fmt.Errorf("snapshot tidak valid: %w", err)
	}
	for mi, m := range d.Modules {
		if m.ID == uuid.Nil {
			return fmt.Errorf("modules[%d] tanpa id", mi)
		}
		for li, l := range m.Lessons {
			if l.ID == uuid.Nil {
				return fmt.Errorf("modules[%d].lessons[%d] tanpa id", mi, li)
			}
		}
		for qi, q := range m.Quizzes {
			if q.ID == uuid.Nil {
				return fmt.Errorf("modules[%d].quizzes[%d] tanpa id", mi, qi)
			}
			for xi, x := range q.Questions {
				if x.ID == uuid.Nil {
					return fmt.Errorf("modules[%d].quizzes[%d].questions[%d] tanpa id", mi, qi, xi)
				}
				for oi, o := range x.Options {
					if o.ID == uuid.Nil {
						return fmt.Errorf("modules[%d].quizzes[%d].questions[%d].options[%d] tanpa id", mi, qi, xi, oi)
					}
				}
			}
		}
	}
	return nil
}

/* ==============================
   JSONB list codec
============================== */

// DecodeStringList: JSONB array → []string (kolom kosong → slice kosong).
func DecodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// EncodeStringList: []string → JSONB array untuk live store.
func EncodeStringList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

// DecodeJSONList / EncodeJSONList untuk attachments & resources.
func DecodeJSONList[T any](raw datatypes.JSON) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

func EncodeJSONList[T any](items []T) datatypes.JSON {
	if items == nil {
		items = []T{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

/* ==============================
   Model ↔ snapshot builders
============================== */

func SnapshotCourseDataFromModel(m *courseModel.CourseModel) *SnapshotCourseData {
	return &SnapshotCourseData{
		Title:            m.CourseTitle,
		Slug:             clonePtr(m.CourseSlug),
		Description:      clonePtr(m.CourseDescription),
		Price:            m.CoursePrice,
		ThumbnailURL:     clonePtr(m.CourseThumbnailURL),
		Level:            clonePtr(m.CourseLevel),
		IsPublished:      m.CourseIsPublished,
		Requirements:     DecodeStringList(m.CourseRequirements),
		LearningOutcomes: DecodeStringList(m.CourseLearningOutcomes),
		TargetAudience:   DecodeStringList(m.CourseTargetAudience),
	}
}

// ApplyToCourseModel menimpa semua scalar field course dari snapshot.
// course_id tidak pernah disentuh.
func (cd *SnapshotCourseData) ApplyToCourseModel(m *courseModel.CourseModel) {
	m.CourseTitle = cd.Title
	m.CourseSlug = clonePtr(cd.Slug)
	m.CourseDescription = clonePtr(cd.Description)
	m.CoursePrice = cd.Price
	m.CourseThumbnailURL = clonePtr(cd.ThumbnailURL)
	m.CourseLevel = clonePtr(cd.Level)
	m.CourseIsPublished = cd.IsPublished
	m.CourseRequirements = EncodeStringList(cd.Requirements)
	m.CourseLearningOutcomes = EncodeStringList(cd.LearningOutcomes)
	m.CourseTargetAudience = EncodeStringList(cd.TargetAudience)
}

func SnapshotModuleFromModel(m *courseModel.CourseModuleModel) SnapshotModule {
	return SnapshotModule{
		ID:          m.ModuleID,
		Title:       m.ModuleTitle,
		Description: clonePtr(m.ModuleDescription),
		Position:    m.ModulePosition,
		IsPublished: m.ModuleIsPublished,
		Lessons:     []SnapshotLesson{},
		Quizzes:     []SnapshotQuiz{},
	}
}

func SnapshotLessonFromModel(m *courseModel.CourseLessonModel) SnapshotLesson {
	return SnapshotLesson{
		ID:        m.LessonID,
		Title:     m.LessonTitle,
		Position:  m.LessonPosition,
		IsPreview: m.LessonIsPreview,
	}
}

func SnapshotLessonContentFromModel(m *courseModel.LessonContentModel) *SnapshotLessonContent {
	return &SnapshotLessonContent{
		Body:        clonePtr(m.LessonContentBody),
		VideoURL:    clonePtr(m.LessonContentVideoURL),
		DurationSec: clonePtr(m.LessonContentDurationSec),
		Attachments: DecodeJSONList[SnapshotAttachment](m.LessonContentAttachments),
		Resources:   DecodeJSONList[SnapshotResource](m.LessonContentResources),
	}
}

func SnapshotQuizFromModel(m *courseModel.CourseQuizModel) SnapshotQuiz {
	return SnapshotQuiz{
		ID:          m.QuizID,
		Title:       m.QuizTitle,
		Description: clonePtr(m.QuizDescription),
		Position:    m.QuizPosition,
		IsPublished: m.QuizIsPublished,
		Questions:   []SnapshotQuestion{},
	}
}

func SnapshotQuestionFromModel(m *courseModel.QuizQuestionModel) SnapshotQuestion {
	return SnapshotQuestion{
		ID:       m.QuestionID,
		Text:     m.QuestionText,
		Position: m.QuestionPosition,
		Points:   m.QuestionPoints,
		Options:  []SnapshotOption{},
	}
}

func SnapshotOptionFromModel(m *courseModel.QuizQuestionOptionModel) SnapshotOption {
	return SnapshotOption{
		ID:        m.OptionID,
		Text:      m.OptionText,
		Position:  m.OptionPosition,
		IsCorrect: m.OptionIsCorrect,
	}
}

// clonePtr: deep copy pointer scalar supaya dokumen tidak share memory dengan row live.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
