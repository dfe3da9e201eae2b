// file: internals/features/courses/courses/model/quiz_question_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizQuestionModel struct {
	QuestionID     uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionQuizID uuid.UUID `gorm:"column:question_quiz_id;type:uuid;not null;index" json:"question_quiz_id"`

	QuestionText     string  `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionPosition int     `gorm:"column:question_position;not null;default:0" json:"question_position"`
	QuestionPoints   float64 `gorm:"column:question_points;type:numeric(6,2);not null;default:1" json:"question_points"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;not null;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;not null;autoUpdateTime" json:"question_updated_at"`

	Options []QuizQuestionOptionModel `gorm:"foreignKey:OptionQuestionID;references:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}
