// file: internals/features/courses/courses/model/course_quiz_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseQuizModel struct {
	QuizID       uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizModuleID uuid.UUID `gorm:"column:quiz_module_id;type:uuid;not null;index" json:"quiz_module_id"`

	QuizTitle       string  `gorm:"column:quiz_title;type:varchar(180);not null" json:"quiz_title"`
	QuizDescription *string `gorm:"column:quiz_description;type:text" json:"quiz_description,omitempty"`
	QuizPosition    int     `gorm:"column:quiz_position;not null;default:0" json:"quiz_position"`
	QuizIsPublished bool    `gorm:"column:quiz_is_published;not null;default:false" json:"quiz_is_published"`

	QuizCreatedAt time.Time `gorm:"column:quiz_created_at;not null;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time `gorm:"column:quiz_updated_at;not null;autoUpdateTime" json:"quiz_updated_at"`

	Questions []QuizQuestionModel `gorm:"foreignKey:QuestionQuizID;references:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CourseQuizModel) TableName() string {
	return "course_quizzes"
}
