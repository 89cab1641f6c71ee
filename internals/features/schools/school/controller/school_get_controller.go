// file: internals/features/schools/school/controller/school_get_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	schoolDto "schoolku_backend/internals/features/schools/school/dto"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	schoolService "schoolku_backend/internals/features/schools/school/service"
	helper "schoolku_backend/internals/helpers"
)

// default list hanya record aktif; include_inactive=1 menampilkan semua
func wantInactive(c *fiber.Ctx) bool {
	v := strings.ToLower(strings.TrimSpace(c.Query("include_inactive")))
	return v == "1" || v == "true" || v == "yes"
}

/*
🟢 GET SCHOOLS — list + filter hirarki + paging

	GET /api/public/schools?state=MP&district=Bhopal&page=1&limit=20
	GET /api/public/schools?management=Government&location=Rural
	GET /api/public/schools?search=primary
	GET /api/public/schools?include_inactive=1

Catatan: district tanpa state (dst) di-drop diam-diam — strict nesting.
*/
func (sc *SchoolController) List(c *fiber.Ctx) error {
	filter := schoolService.FilterFromQuery(c)
	paging := helper.ResolvePaging(c)

	dbq := sc.DB.Model(&schoolModel.SchoolModel{})
	dbq = schoolService.ApplyFilter(dbq, filter)
	if !wantInactive(c) {
		dbq = dbq.Where("school_is_active = ?", true)
	}

	// total count (sebelum window)
	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		log.Printf("[ERROR] [List] count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data sekolah")
	}

	// stabilkan order (nama bisa kembar → tie-break PK)
	var schools []schoolModel.SchoolModel
	if err := dbq.
		Order("school_name ASC").
		Order("school_id ASC").
		Limit(paging.Limit).
		Offset(paging.Skip).
		Find(&schools).Error; err != nil {
		log.Printf("[ERROR] [List] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	resp := make([]schoolDto.SchoolResponse, 0, len(schools))
	for i := range schools {
		resp = append(resp, schoolDto.FromModel(&schools[i]))
	}

	log.Printf("[SUCCESS] [List] %d sekolah (page=%d limit=%d total=%d)",
		len(resp), paging.Page, paging.Limit, total)

	return helper.JsonList(c, "ok", resp, helper.BuildPagination(total, paging))
}
