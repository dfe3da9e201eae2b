// file: internals/features/courses/courses/dto/course_content_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "kursusku_backend/internals/features/courses/courses/model"
)

/* ==============================
   MODULE
============================== */

type CreateModuleRequest struct {
	ModuleTitle       string  `json:"module_title" validate:"required,max=180"`
	ModuleDescription *string `json:"module_description" validate:"omitempty"`
	ModulePosition    *int    `json:"module_position" validate:"omitempty,gte=0"`
	ModuleIsPublished *bool   `json:"module_is_published" validate:"omitempty"`
}

func (r *CreateModuleRequest) ToModel(courseID uuid.UUID) *model.CourseModuleModel {
	pos := 0
	if r.ModulePosition != nil {
		pos = *r.ModulePosition
	}
	isPub := false
	if r.ModuleIsPublished != nil {
		isPub = *r.ModuleIsPublished
	}
	return &model.CourseModuleModel{
		ModuleCourseID:    courseID,
		ModuleTitle:       strings.TrimSpace(r.ModuleTitle),
		ModuleDescription: trimPtr(r.ModuleDescription),
		ModulePosition:    pos,
		ModuleIsPublished: isPub,
	}
}

type PatchModuleRequest struct {
	ModuleTitle       UpdateField[string] `json:"module_title"`
	ModuleDescription UpdateField[string] `json:"module_description"`
	ModulePosition    UpdateField[int]    `json:"module_position"`
	ModuleIsPublished UpdateField[bool]   `json:"module_is_published"`
}

func (r *PatchModuleRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.ModuleTitle.ShouldUpdate() && !r.ModuleTitle.IsNull() {
		if v := strings.TrimSpace(r.ModuleTitle.Val()); v != "" {
			updates["module_title"] = v
		}
	}
	applyNullable(updates, "module_description", r.ModuleDescription)
	if r.ModulePosition.ShouldUpdate() && !r.ModulePosition.IsNull() {
		updates["module_position"] = r.ModulePosition.Val()
	}
	if r.ModuleIsPublished.ShouldUpdate() && !r.ModuleIsPublished.IsNull() {
		updates["module_is_published"] = r.ModuleIsPublished.Val()
	}
	return updates
}

/* ==============================
   LESSON
============================== */

type CreateLessonRequest struct {
	LessonTitle     string `json:"lesson_title" validate:"required,max=180"`
	LessonPosition  *int   `json:"lesson_position" validate:"omitempty,gte=0"`
	LessonIsPreview *bool  `json:"lesson_is_preview" validate:"omitempty"`
}

func (r *CreateLessonRequest) ToModel(moduleID uuid.UUID) *model.CourseLessonModel {
	pos := 0
	if r.LessonPosition != nil {
		pos = *r.LessonPosition
	}
	isPrev := false
	if r.LessonIsPreview != nil {
		isPrev = *r.LessonIsPreview
	}
	return &model.CourseLessonModel{
		LessonModuleID:  moduleID,
		LessonTitle:     strings.TrimSpace(r.LessonTitle),
		LessonPosition:  pos,
		LessonIsPreview: isPrev,
	}
}

type PatchLessonRequest struct {
	LessonTitle     UpdateField[string] `json:"lesson_title"`
	LessonPosition  UpdateField[int]    `json:"lesson_position"`
	LessonIsPreview UpdateField[bool]   `json:"lesson_is_preview"`
}

func (r *PatchLessonRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.LessonTitle.ShouldUpdate() && !r.LessonTitle.IsNull() {
		if v := strings.TrimSpace(r.LessonTitle.Val()); v != "" {
			updates["lesson_title"] = v
		}
	}
	if r.LessonPosition.ShouldUpdate() && !r.LessonPosition.IsNull() {
		updates["lesson_position"] = r.LessonPosition.Val()
	}
	if r.LessonIsPreview.ShouldUpdate() && !r.LessonIsPreview.IsNull() {
		updates["lesson_is_preview"] = r.LessonIsPreview.Val()
	}
	return updates
}

/* ==============================
   LESSON CONTENT (PUT = upsert keyed lesson_id)
============================== */

type PutLessonContentRequest struct {
	LessonContentBody        *string  `json:"lesson_content_body" validate:"omitempty"`
	LessonContentVideoURL    *string  `json:"lesson_content_video_url" validate:"omitempty,url"`
	LessonContentDurationSec *int     `json:"lesson_content_duration_sec" validate:"omitempty,gte=0"`
	LessonContentAttachments []AttachmentItem `json:"lesson_content_attachments" validate:"omitempty,dive"`
	LessonContentResources   []ResourceItem   `json:"lesson_content_resources" validate:"omitempty,dive"`
}

type AttachmentItem struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

type ResourceItem struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

/* ==============================
   QUIZ / QUESTION / OPTION
============================== */

type CreateQuizRequest struct {
	QuizTitle       string  `json:"quiz_title" validate:"required,max=180"`
	QuizDescription *string `json:"quiz_description" validate:"omitempty"`
	QuizPosition    *int    `json:"quiz_position" validate:"omitempty,gte=0"`
	QuizIsPublished *bool   `json:"quiz_is_published" validate:"omitempty"`
}

func (r *CreateQuizRequest) ToModel(moduleID uuid.UUID) *model.CourseQuizModel {
	pos := 0
	if r.QuizPosition != nil {
		pos = *r.QuizPosition
	}
	isPub := false
	if r.QuizIsPublished != nil {
		isPub = *r.QuizIsPublished
	}
	return &model.CourseQuizModel{
		QuizModuleID:    moduleID,
		QuizTitle:       strings.TrimSpace(r.QuizTitle),
		QuizDescription: trimPtr(r.QuizDescription),
		QuizPosition:    pos,
		QuizIsPublished: isPub,
	}
}

type PatchQuizRequest struct {
	QuizTitle       UpdateField[string] `json:"quiz_title"`
	QuizDescription UpdateField[string] `json:"quiz_description"`
	QuizPosition    UpdateField[int]    `json:"quiz_position"`
	QuizIsPublished UpdateField[bool]   `json:"quiz_is_published"`
}

func (r *PatchQuizRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.QuizTitle.ShouldUpdate() && !r.QuizTitle.IsNull() {
		if v := strings.TrimSpace(r.QuizTitle.Val()); v != "" {
			updates["quiz_title"] = v
		}
	}
	applyNullable(updates, "quiz_description", r.QuizDescription)
	if r.QuizPosition.ShouldUpdate() && !r.QuizPosition.IsNull() {
		updates["quiz_position"] = r.QuizPosition.Val()
	}
	if r.QuizIsPublished.ShouldUpdate() && !r.QuizIsPublished.IsNull() {
		updates["quiz_is_published"] = r.QuizIsPublished.Val()
	}
	return updates
}

type CreateQuestionRequest struct {
	QuestionText     string   `json:"question_text" validate:"required"`
	QuestionPosition *int     `json:"question_position" validate:"omitempty,gte=0"`
	QuestionPoints   *float64 `json:"question_points" validate:"omitempty,gt=0"`
}

func (r *CreateQuestionRequest) ToModel(quizID uuid.UUID) *model.QuizQuestionModel {
	pos := 0
	if r.QuestionPosition != nil {
		pos = *r.QuestionPosition
	}
	points := 1.0
	if r.QuestionPoints != nil {
		points = *r.QuestionPoints
	}
	return &model.QuizQuestionModel{
		QuestionQuizID:   quizID,
		QuestionText:     strings.TrimSpace(r.QuestionText),
		QuestionPosition: pos,
		QuestionPoints:   points,
	}
}

type CreateOptionRequest struct {
	OptionText      string `json:"option_text" validate:"required"`
	OptionPosition  *int   `json:"option_position" validate:"omitempty,gte=0"`
	OptionIsCorrect *bool  `json:"option_is_correct" validate:"omitempty"`
}

func (r *CreateOptionRequest) ToModel(questionID uuid.UUID) *model.QuizQuestionOptionModel {
	pos := 0
	if r.OptionPosition != nil {
		pos = *r.OptionPosition
	}
	correct := false
	if r.OptionIsCorrect != nil {
		correct = *r.OptionIsCorrect
	}
	return &model.QuizQuestionOptionModel{
		OptionQuestionID: questionID,
		OptionText:       strings.TrimSpace(r.OptionText),
		OptionPosition:   pos,
		OptionIsCorrect:  correct,
	}
}

type PatchQuestionRequest struct {
	QuestionText     UpdateField[string]  `json:"question_text"`
	QuestionPosition UpdateField[int]     `json:"question_position"`
	QuestionPoints   UpdateField[float64] `json:"question_points"`
}

func (r *PatchQuestionRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.QuestionText.ShouldUpdate() && !r.QuestionText.IsNull() {
		if v := strings.TrimSpace(r.QuestionText.Val()); v != "" {
			updates["question_text"] = v
		}
	}
	if r.QuestionPosition.ShouldUpdate() && !r.QuestionPosition.IsNull() {
		updates["question_position"] = r.QuestionPosition.Val()
	}
	if r.QuestionPoints.ShouldUpdate() && !r.QuestionPoints.IsNull() {
		updates["question_points"] = r.QuestionPoints.Val()
	}
	return updates
}

type PatchOptionRequest struct {
	OptionText      UpdateField[string] `json:"option_text"`
	OptionPosition  UpdateField[int]    `json:"option_position"`
	OptionIsCorrect UpdateField[bool]   `json:"option_is_correct"`
}

func (r *PatchOptionRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.OptionText.ShouldUpdate() && !r.OptionText.IsNull() {
		if v := strings.TrimSpace(r.OptionText.Val()); v != "" {
			updates["option_text"] = v
		}
	}
	if r.OptionPosition.ShouldUpdate() && !r.OptionPosition.IsNull() {
		updates["option_position"] = r.OptionPosition.Val()
	}
	if r.OptionIsCorrect.ShouldUpdate() && !r.OptionIsCorrect.IsNull() {
		updates["option_is_correct"] = r.OptionIsCorrect.Val()
	}
	return updates
}
