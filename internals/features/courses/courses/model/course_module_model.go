// file: internals/features/courses/courses/model/course_module_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseModuleModel struct {
	ModuleID       uuid.UUID `gorm:"column:module_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"module_id"`
	ModuleCourseID uuid.UUID `gorm:"column:module_course_id;type:uuid;not null;index" json:"module_course_id"`

	ModuleTitle       string  `gorm:"column:module_title;type:varchar(180);not null" json:"module_title"`
	ModuleDescription *string `gorm:"column:module_description;type:text" json:"module_description,omitempty"`
	ModulePosition    int     `gorm:"column:module_position;not null;default:0" json:"module_position"`
	ModuleIsPublished bool    `gorm:"column:module_is_published;not null;default:false" json:"module_is_published"`

	ModuleCreatedAt time.Time `gorm:"column:module_created_at;not null;autoCreateTime" json:"module_created_at"`
	ModuleUpdatedAt time.Time `gorm:"column:module_updated_at;not null;autoUpdateTime" json:"module_updated_at"`

	Lessons []CourseLessonModel `gorm:"foreignKey:LessonModuleID;references:ModuleID;constraint:OnDelete:CASCADE" json:"-"`
	Quizzes []CourseQuizModel   `gorm:"foreignKey:QuizModuleID;references:ModuleID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CourseModuleModel) TableName() string {
	return "course_modules"
}
