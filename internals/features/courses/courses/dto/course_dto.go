// file: internals/features/courses/courses/dto/course_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "kursusku_backend/internals/features/courses/courses/model"
)

/* ==============================
   Helpers
============================== */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func encodeList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

func decodeList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

/* ==============================
   CREATE (POST /courses)
============================== */

type CreateCourseRequest struct {
	CourseTitle        string   `json:"course_title" validate:"required,max=180"`
	CourseSlug         *string  `json:"course_slug" validate:"omitempty,max=160"`
	CourseDescription  *string  `json:"course_description" validate:"omitempty"`
	CoursePrice        *float64 `json:"course_price" validate:"omitempty,gte=0"`
	CourseThumbnailURL *string  `json:"course_thumbnail_url" validate:"omitempty,url"`
	CourseLevel        *string  `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CourseIsPublished  *bool    `json:"course_is_published" validate:"omitempty"`

	CourseRequirements     []string `json:"course_requirements" validate:"omitempty"`
	CourseLearningOutcomes []string `json:"course_learning_outcomes" validate:"omitempty"`
	CourseTargetAudience   []string `json:"course_target_audience" validate:"omitempty"`
}

// ToModel: builder model dari payload Create (timestamps oleh GORM)
func (r *CreateCourseRequest) ToModel(instructorID uuid.UUID) *model.CourseModel {
	price := 0.0
	if r.CoursePrice != nil {
		price = *r.CoursePrice
	}
	isPub := false
	if r.CourseIsPublished != nil {
		isPub = *r.CourseIsPublished
	}
	return &model.CourseModel{
		CourseInstructorID:     instructorID,
		CourseTitle:            strings.TrimSpace(r.CourseTitle),
		CourseSlug:             trimPtr(r.CourseSlug),
		CourseDescription:      trimPtr(r.CourseDescription),
		CoursePrice:            price,
		CourseThumbnailURL:     trimPtr(r.CourseThumbnailURL),
		CourseLevel:            trimPtr(r.CourseLevel),
		CourseIsPublished:      isPub,
		CourseRequirements:     encodeList(r.CourseRequirements),
		CourseLearningOutcomes: encodeList(r.CourseLearningOutcomes),
		CourseTargetAudience:   encodeList(r.CourseTargetAudience),
	}
}

/* ==============================
   PATCH (PATCH /courses/:id)
============================== */

type PatchCourseRequest struct {
	CourseTitle        UpdateField[string]   `json:"course_title"`
	CourseSlug         UpdateField[string]   `json:"course_slug"`
	CourseDescription  UpdateField[string]   `json:"course_description"`
	CoursePrice        UpdateField[float64]  `json:"course_price"`
	CourseThumbnailURL UpdateField[string]   `json:"course_thumbnail_url"`
	CourseLevel        UpdateField[string]   `json:"course_level"`
	CourseIsPublished  UpdateField[bool]     `json:"course_is_published"`
	CourseRequirements UpdateField[[]string] `json:"course_requirements"`

	CourseLearningOutcomes UpdateField[[]string] `json:"course_learning_outcomes"`
	CourseTargetAudience   UpdateField[[]string] `json:"course_target_audience"`
}

func (r *PatchCourseRequest) ToUpdates() map[string]any {
	updates := map[string]any{}

	if r.CourseTitle.ShouldUpdate() && !r.CourseTitle.IsNull() {
		if v := strings.TrimSpace(r.CourseTitle.Val()); v != "" {
			updates["course_title"] = v
		}
	}
	applyNullable(updates, "course_slug", r.CourseSlug)
	applyNullable(updates, "course_description", r.CourseDescription)
	if r.CoursePrice.ShouldUpdate() && !r.CoursePrice.IsNull() {
		updates["course_price"] = r.CoursePrice.Val()
	}
	applyNullable(updates, "course_thumbnail_url", r.CourseThumbnailURL)
	applyNullable(updates, "course_level", r.CourseLevel)
	if r.CourseIsPublished.ShouldUpdate() && !r.CourseIsPublished.IsNull() {
		updates["course_is_published"] = r.CourseIsPublished.Val()
	}
	if r.CourseRequirements.ShouldUpdate() {
		updates["course_requirements"] = encodeList(r.CourseRequirements.Val())
	}
	if r.CourseLearningOutcomes.ShouldUpdate() {
		updates["course_learning_outcomes"] = encodeList(r.CourseLearningOutcomes.Val())
	}
	if r.CourseTargetAudience.ShouldUpdate() {
		updates["course_target_audience"] = encodeList(r.CourseTargetAudience.Val())
	}
	return updates
}

func applyNullable(updates map[string]any, col string, f UpdateField[string]) {
	if !f.ShouldUpdate() {
		return
	}
	if f.IsNull() {
		updates[col] = gorm.Expr("NULL")
		return
	}
	v := strings.TrimSpace(f.Val())
	if v == "" {
		updates[col] = gorm.Expr("NULL")
	} else {
		updates[col] = v
	}
}

/* ==============================
   RESPONSE
============================== */

type CourseResponse struct {
	CourseID           uuid.UUID `json:"course_id"`
	CourseInstructorID uuid.UUID `json:"course_instructor_id"`
	CourseTitle        string    `json:"course_title"`
	CourseSlug         *string   `json:"course_slug,omitempty"`
	CourseDescription  *string   `json:"course_description,omitempty"`
	CoursePrice        float64   `json:"course_price"`
	CourseThumbnailURL *string   `json:"course_thumbnail_url,omitempty"`
	CourseLevel        *string   `json:"course_level,omitempty"`
	CourseIsPublished  bool      `json:"course_is_published"`

	CourseRequirements     []string `json:"course_requirements"`
	CourseLearningOutcomes []string `json:"course_learning_outcomes"`
	CourseTargetAudience   []string `json:"course_target_audience"`

	CourseCreatedAt time.Time `json:"course_created_at"`
	CourseUpdatedAt time.Time `json:"course_updated_at"`
}

func FromCourseModel(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:               m.CourseID,
		CourseInstructorID:     m.CourseInstructorID,
		CourseTitle:            m.CourseTitle,
		CourseSlug:             m.CourseSlug,
		CourseDescription:      m.CourseDescription,
		CoursePrice:            m.CoursePrice,
		CourseThumbnailURL:     m.CourseThumbnailURL,
		CourseLevel:            m.CourseLevel,
		CourseIsPublished:      m.CourseIsPublished,
		CourseRequirements:     decodeList(m.CourseRequirements),
		CourseLearningOutcomes: decodeList(m.CourseLearningOutcomes),
		CourseTargetAudience:   decodeList(m.CourseTargetAudience),
		CourseCreatedAt:        m.CourseCreatedAt,
		CourseUpdatedAt:        m.CourseUpdatedAt,
	}
}
