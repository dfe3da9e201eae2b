// file: internals/features/courses/course_versions/model/course_audit_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseAuditLogModel: jejak aksi penting pada course (restore dsb).
type CourseAuditLogModel struct {
	AuditID       uuid.UUID `gorm:"column:audit_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"audit_id"`
	AuditCourseID uuid.UUID `gorm:"column:audit_course_id;type:uuid;not null;index" json:"audit_course_id"`
	AuditActorID  uuid.UUID `gorm:"column:audit_actor_id;type:uuid;not null" json:"audit_actor_id"`

	AuditAction   string     `gorm:"column:audit_action;type:varchar(64);not null" json:"audit_action"`
	AuditTargetID *uuid.UUID `gorm:"column:audit_target_id;type:uuid" json:"audit_target_id,omitempty"`
	AuditNote     *string    `gorm:"column:audit_note;type:text" json:"audit_note,omitempty"`

	AuditCreatedAt time.Time `gorm:"column:audit_created_at;not null;autoCreateTime" json:"audit_created_at"`
}

func (CourseAuditLogModel) TableName() string {
	return "course_audit_logs"
}

const (
	AuditActionRestoreVersion = "restore_version"
	AuditActionCreateVersion  = "create_version"
)
