// file: internals/features/courses/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CourseModel struct {
	CourseID           uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	CourseInstructorID uuid.UUID `gorm:"column:course_instructor_id;type:uuid;not null;index" json:"course_instructor_id"`

	CourseTitle        string  `gorm:"column:course_title;type:varchar(180);not null" json:"course_title"`
	CourseSlug         *string `gorm:"column:course_slug;type:varchar(160);uniqueIndex" json:"course_slug,omitempty"`
	CourseDescription  *string `gorm:"column:course_description;type:text" json:"course_description,omitempty"`
	CoursePrice        float64 `gorm:"column:course_price;type:numeric(12,2);not null;default:0" json:"course_price"`
	CourseThumbnailURL *string `gorm:"column:course_thumbnail_url;type:text" json:"course_thumbnail_url,omitempty"`
	CourseLevel        *string `gorm:"column:course_level;type:varchar(20)" json:"course_level,omitempty"`
	CourseIsPublished  bool    `gorm:"column:course_is_published;not null;default:false" json:"course_is_published"`

	// List fields disimpan sebagai JSONB (array of string)
	CourseRequirements     datatypes.JSON `gorm:"column:course_requirements;type:jsonb" json:"course_requirements,omitempty"`
	CourseLearningOutcomes datatypes.JSON `gorm:"column:course_learning_outcomes;type:jsonb" json:"course_learning_outcomes,omitempty"`
	CourseTargetAudience   datatypes.JSON `gorm:"column:course_target_audience;type:jsonb" json:"course_target_audience,omitempty"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;not null;autoUpdateTime" json:"course_updated_at"`

	// Relasi (dipakai untuk deklarasi FK + cascade; loading selalu eksplisit per level)
	Modules []CourseModuleModel `gorm:"foreignKey:ModuleCourseID;references:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM.
func (CourseModel) TableName() string {
	return "courses"
}
