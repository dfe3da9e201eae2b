// file: internals/features/courses/course_versions/service/version_store_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "kursusku_backend/internals/helpers"

	dto "kursusku_backend/internals/features/courses/course_versions/dto"
	model "kursusku_backend/internals/features/courses/course_versions/model"
)

/* =========================================================
   Version store — append-only.
   Tidak ada operasi update/delete terhadap course_versions.
========================================================= */

// CreateVersion menjalankan serializer lalu menyimpan dokumen + metadata.
// Dipanggil dengan tx saat dipakai sebagai backup di dalam restore,
// supaya snapshot membaca state konsisten transaksi yang sama.
func CreateVersion(
	ctx context.Context,
	tx *gorm.DB,
	courseID uuid.UUID,
	title string,
	description *string,
	isAutosave bool,
	authorID uuid.UUID,
) (*model.CourseVersionModel, error) {
	doc, err := BuildSnapshot(ctx, tx, courseID)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal serialisasi snapshot")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Versi tanpa judul"
	}

	row := &model.CourseVersionModel{
		CourseVersionID:          uuid.New(),
		CourseVersionCourseID:    courseID,
		CourseVersionTitle:       title,
		CourseVersionDescription: description,
		CourseVersionIsAutosave:  isAutosave,
		CourseVersionCreatedBy:   authorID,
		CourseVersionSnapshot:    datatypes.JSON(raw),
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan versi")
	}
	return row, nil
}

// GetVersion memuat satu versi. Harus cocok course_id DAN version_id —
// menangkal tebak-tebakan id versi milik course lain.
func GetVersion(ctx context.Context, db *gorm.DB, courseID, versionID uuid.UUID) (*model.CourseVersionModel, error) {
	var row model.CourseVersionModel
	if err := db.WithContext(ctx).
		First(&row, "course_version_id = ? AND course_version_course_id = ?", versionID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Versi tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil versi")
	}
	return &row, nil
}

// ListVersions: riwayat versi sebuah course, terbaru dulu.
func ListVersions(ctx context.Context, db *gorm.DB, courseID uuid.UUID, p helper.Paging) ([]model.CourseVersionModel, int64, error) {
	var total int64
	if err := db.WithContext(ctx).
		Model(&model.CourseVersionModel{}).
		Where("course_version_course_id = ?", courseID).
		Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung versi")
	}

	var rows []model.CourseVersionModel
	if err := db.WithContext(ctx).
		Where("course_version_course_id = ?", courseID).
		Order("course_version_created_at DESC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar versi")
	}
	return rows, total, nil
}

// LookupAuthorName: best-effort, nama pembuat dari tabel users (boleh kosong).
func LookupAuthorName(ctx context.Context, db *gorm.DB, userID uuid.UUID) *string {
	var name string
	if err := db.WithContext(ctx).
		Table("users").
		Select("user_name").
		Where("user_id = ?", userID).
		Scan(&name).Error; err != nil {
		return nil
	}
	if strings.TrimSpace(name) == "" {
		return nil
	}
	return &name
}

// DecodeVersionSnapshot: decode + validasi dokumen tersimpan.
// Error dipetakan 422 (MalformedSnapshot) — dicek SEBELUM mutasi apapun.
func DecodeVersionSnapshot(v *model.CourseVersionModel) (*dto.SnapshotDocument, error) {
	doc, err := dto.DecodeSnapshot(v.CourseVersionSnapshot)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Snapshot rusak: "+err.Error())
	}
	return doc, nil
}
