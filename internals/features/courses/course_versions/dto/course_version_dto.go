// file: internals/features/courses/course_versions/dto/course_version_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kursusku_backend/internals/features/courses/course_versions/model"
)

/* ==============================
   CREATE (POST /courses/:course_id/versions)
============================== */

type CreateVersionRequest struct {
	VersionTitle       string  `json:"version_title" validate:"required,max=220"`
	VersionDescription *string `json:"version_description" validate:"omitempty"`
	VersionIsAutosave  *bool   `json:"version_is_autosave" validate:"omitempty"`
}

func (r *CreateVersionRequest) Normalize() {
	r.VersionTitle = strings.TrimSpace(r.VersionTitle)
	if r.VersionDescription != nil {
		d := strings.TrimSpace(*r.VersionDescription)
		if d == "" {
			r.VersionDescription = nil
		} else {
			r.VersionDescription = &d
		}
	}
}

/* ==============================
   RESPONSES
============================== */

// AuthorSummary: ringkasan pembuat versi (nama diisi best-effort dari tabel users)
type AuthorSummary struct {
	ID   uuid.UUID `json:"id"`
	Name *string   `json:"name,omitempty"`
}

type CourseVersionMetaResponse struct {
	CourseVersionID          uuid.UUID     `json:"course_version_id"`
	CourseVersionCourseID    uuid.UUID     `json:"course_version_course_id"`
	CourseVersionTitle       string        `json:"course_version_title"`
	CourseVersionDescription *string       `json:"course_version_description,omitempty"`
	CourseVersionIsAutosave  bool          `json:"course_version_is_autosave"`
	CourseVersionCreatedBy   AuthorSummary `json:"course_version_created_by"`
	CourseVersionCreatedAt   time.Time     `json:"course_version_created_at"`
}

type CourseVersionDetailResponse struct {
	CourseVersionMetaResponse
	CourseVersionSnapshot *SnapshotDocument `json:"course_version_snapshot"`
}

type RestoreVersionResponse struct {
	CourseID          uuid.UUID `json:"course_id"`
	RestoredVersionID uuid.UUID `json:"restored_version_id"`
	BackupVersionID   uuid.UUID `json:"backup_version_id"`
}

func VersionMetaFromModel(m *model.CourseVersionModel, authorName *string) CourseVersionMetaResponse {
	return CourseVersionMetaResponse{
		CourseVersionID:          m.CourseVersionID,
		CourseVersionCourseID:    m.CourseVersionCourseID,
		CourseVersionTitle:       m.CourseVersionTitle,
		CourseVersionDescription: m.CourseVersionDescription,
		CourseVersionIsAutosave:  m.CourseVersionIsAutosave,
		CourseVersionCreatedBy: AuthorSummary{
			ID:   m.CourseVersionCreatedBy,
			Name: authorName,
		},
		CourseVersionCreatedAt: m.CourseVersionCreatedAt,
	}
}

func VersionDetailFromModel(m *model.CourseVersionModel, authorName *string, doc *SnapshotDocument) CourseVersionDetailResponse {
	return CourseVersionDetailResponse{
		CourseVersionMetaResponse: VersionMetaFromModel(m, authorName),
		CourseVersionSnapshot:     doc,
	}
}
