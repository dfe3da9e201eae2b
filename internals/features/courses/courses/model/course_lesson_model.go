// file: internals/features/courses/courses/model/course_lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseLessonModel struct {
	LessonID       uuid.UUID `gorm:"column:lesson_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"lesson_id"`
	LessonModuleID uuid.UUID `gorm:"column:lesson_module_id;type:uuid;not null;index" json:"lesson_module_id"`

	LessonTitle     string `gorm:"column:lesson_title;type:varchar(180);not null" json:"lesson_title"`
	LessonPosition  int    `gorm:"column:lesson_position;not null;default:0" json:"lesson_position"`
	LessonIsPreview bool   `gorm:"column:lesson_is_preview;not null;default:false" json:"lesson_is_preview"`

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;not null;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;not null;autoUpdateTime" json:"lesson_updated_at"`

	// 1:1 — konten mengikuti lifecycle lesson-nya
	Content *LessonContentModel `gorm:"foreignKey:LessonContentLessonID;references:LessonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CourseLessonModel) TableName() string {
	return "course_lessons"
}
