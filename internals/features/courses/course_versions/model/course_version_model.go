// file: internals/features/courses/course_versions/model/course_version_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseVersionModel: record versi course, append-only.
// Kolom snapshot berisi deep copy seluruh tree course saat capture
// dan tidak pernah diedit setelah tertulis.
type CourseVersionModel struct {
	CourseVersionID       uuid.UUID `gorm:"column:course_version_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_version_id"`
	CourseVersionCourseID uuid.UUID `gorm:"column:course_version_course_id;type:uuid;not null;index" json:"course_version_course_id"`

	CourseVersionTitle       string  `gorm:"column:course_version_title;type:varchar(220);not null" json:"course_version_title"`
	CourseVersionDescription *string `gorm:"column:course_version_description;type:text" json:"course_version_description,omitempty"`
	CourseVersionIsAutosave  bool    `gorm:"column:course_version_is_autosave;not null;default:false" json:"course_version_is_autosave"`

	CourseVersionCreatedBy uuid.UUID      `gorm:"column:course_version_created_by;type:uuid;not null" json:"course_version_created_by"`
	CourseVersionSnapshot  datatypes.JSON `gorm:"column:course_version_snapshot;type:jsonb;not null" json:"course_version_snapshot"`

	CourseVersionCreatedAt time.Time `gorm:"column:course_version_created_at;not null;autoCreateTime" json:"course_version_created_at"`
}

func (CourseVersionModel) TableName() string {
	return "course_versions"
}
