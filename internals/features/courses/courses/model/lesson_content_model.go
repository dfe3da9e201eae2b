// file: internals/features/courses/courses/model/lesson_content_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LessonContentModel 1:1 dengan lesson, keyed by lesson_content_lesson_id.
type LessonContentModel struct {
	LessonContentID       uuid.UUID `gorm:"column:lesson_content_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"lesson_content_id"`
	LessonContentLessonID uuid.UUID `gorm:"column:lesson_content_lesson_id;type:uuid;not null;uniqueIndex" json:"lesson_content_lesson_id"`

	LessonContentBody        *string `gorm:"column:lesson_content_body;type:text" json:"lesson_content_body,omitempty"`
	LessonContentVideoURL    *string `gorm:"column:lesson_content_video_url;type:text" json:"lesson_content_video_url,omitempty"`
	LessonContentDurationSec *int    `gorm:"column:lesson_content_duration_sec" json:"lesson_content_duration_sec,omitempty"`

	// attachments/resources disimpan sebagai JSONB array
	LessonContentAttachments datatypes.JSON `gorm:"column:lesson_content_attachments;type:jsonb" json:"lesson_content_attachments,omitempty"`
	LessonContentResources   datatypes.JSON `gorm:"column:lesson_content_resources;type:jsonb" json:"lesson_content_resources,omitempty"`

	LessonContentCreatedAt time.Time `gorm:"column:lesson_content_created_at;not null;autoCreateTime" json:"lesson_content_created_at"`
	LessonContentUpdatedAt time.Time `gorm:"column:lesson_content_updated_at;not null;autoUpdateTime" json:"lesson_content_updated_at"`
}

func (LessonContentModel) TableName() string {
	return "lesson_contents"
}
