// file: internals/features/courses/courses/model/quiz_question_option_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizQuestionOptionModel struct {
	OptionID         uuid.UUID `gorm:"column:option_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"option_id"`
	OptionQuestionID uuid.UUID `gorm:"column:option_question_id;type:uuid;not null;index" json:"option_question_id"`

	OptionText      string `gorm:"column:option_text;type:text;not null" json:"option_text"`
	OptionPosition  int    `gorm:"column:option_position;not null;default:0" json:"option_position"`
	OptionIsCorrect bool   `gorm:"column:option_is_correct;not null;default:false" json:"option_is_correct"`

	OptionCreatedAt time.Time `gorm:"column:option_created_at;not null;autoCreateTime" json:"option_created_at"`
	OptionUpdatedAt time.Time `gorm:"column:option_updated_at;not null;autoUpdateTime" json:"option_updated_at"`
}

func (QuizQuestionOptionModel) TableName() string {
	return "quiz_question_options"
}
