// file: internals/features/schools/school/controller/school_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolDto "schoolku_backend/internals/features/schools/school/dto"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	schoolService "schoolku_backend/internals/features/schools/school/service"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolController(db *gorm.DB, v *validator.Validate) *SchoolController {
	return &SchoolController{DB: db, Validate: v}
}

// ========== helpers lokal ==========

func parseSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	s := strings.TrimSpace(c.Params("school_id"))
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "school_id pada path tidak valid")
	}
	return id, nil
}

// validasi → map field → pesan (dipakai JsonValidationError)
func validationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], "gagal validasi rule "+fe.Tag())
		}
		return out
	}
	out["_"] = []string{err.Error()}
	return out
}

// creator dari token (kalau ada) — dicatat, tidak memengaruhi visibilitas
func creatorFromLocals(c *fiber.Ctx) *uuid.UUID {
	s, ok := c.Locals("user_id").(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

/* =========================
   CREATE
   POST /api/a/schools
========================= */
func (sc *SchoolController) Create(c *fiber.Ctx) error {
	var req schoolDto.SchoolCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := sc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	m := req.ToModel(creatorFromLocals(c))

	if err := sc.DB.Create(m).Error; err != nil {
		// konflik udise_code dibedakan dari kegagalan validasi/server
		if schoolService.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "udise_code sudah terdaftar")
		}
		code, msg := schoolService.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonCreated(c, "Sekolah berhasil dibuat", schoolDto.FromModel(m))
}

/* =========================
   GET BY ID
   GET /api/public/schools/:school_id
========================= */
func (sc *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := parseSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m schoolModel.SchoolModel
	if err := sc.DB.First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	return helper.JsonOK(c, "ok", schoolDto.FromModel(&m))
}

/* =========================
   PATCH
   PATCH /api/a/schools/:school_id
========================= */
func (sc *SchoolController) Patch(c *fiber.Ctx) error {
	id, err := parseSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Ambil row existing
	var m schoolModel.SchoolModel
	if err := sc.DB.First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	var u schoolDto.SchoolUpdateRequest
	if err := c.BodyParser(&u); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := sc.Validate.Struct(&u); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	// Terapkan patch (re-normalisasi enum di boundary)
	schoolDto.ApplyUpdate(&m, &u)

	if err := sc.DB.Save(&m).Error; err != nil {
		code, msg := schoolService.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonUpdated(c, "Berhasil", schoolDto.FromModel(&m))
}

/* =========================
   DELETE (soft)
   DELETE /api/a/schools/:school_id
   — set school_is_active=false; tidak pernah hard delete di jalur default
========================= */
func (sc *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := parseSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m schoolModel.SchoolModel
	if err := sc.DB.First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	if err := sc.DB.Model(&m).Update("school_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sekolah")
	}

	return helper.JsonDeleted(c, "Sekolah berhasil dinonaktifkan", fiber.Map{
		"school_id": m.SchoolID,
	})
}
