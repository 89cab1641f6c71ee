// file: internals/features/schools/school/controller/school_filter_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/school/model"
	schoolService "schoolku_backend/internals/features/schools/school/service"
	helper "schoolku_backend/internals/helpers"
)

/*
🟢 GET FILTER OPTIONS — nilai distinct per level hirarki

	GET /api/public/schools/filters
	GET /api/public/schools/filters?state=MP
	GET /api/public/schools/filters?state=MP&district=Bhopal

Scoping mengikuti kebijakan strict nesting yang sama dengan list:
daftar district baru keluar setelah state dipilih, dst. Level yang
induknya belum dipilih dikembalikan sebagai array kosong.
*/
func (sc *SchoolController) FilterOptions(c *fiber.Ctx) error {
	// Effective() membuang turunan tanpa induk — konsisten dengan list
	filter := schoolService.FilterFromQuery(c).Effective()
	activeOnly := !wantInactive(c)

	base := func() *gorm.DB {
		q := sc.DB.Model(&schoolModel.SchoolModel{})
		if activeOnly {
			q = q.Where("school_is_active = ?", true)
		}
		return q
	}

	distinct := func(column string, scope schoolService.SchoolFilter) ([]string, error) {
		out := make([]string, 0, 32)
		q := schoolService.ApplyFilter(base(), scope)
		err := q.Distinct(column).Order(column + " ASC").Pluck(column, &out).Error
		return out, err
	}

	states, err := distinct("school_state", schoolService.SchoolFilter{})
	if err != nil {
		log.Printf("[ERROR] [FilterOptions] states: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil opsi filter")
	}

	districts := []string{}
	if filter.State != "" {
		districts, err = distinct("school_district", schoolService.SchoolFilter{State: filter.State})
		if err != nil {
			log.Printf("[ERROR] [FilterOptions] districts: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil opsi filter")
		}
	}

	blocks := []string{}
	if filter.State != "" && filter.District != "" {
		blocks, err = distinct("school_block", schoolService.SchoolFilter{
			State:    filter.State,
			District: filter.District,
		})
		if err != nil {
			log.Printf("[ERROR] [FilterOptions] blocks: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil opsi filter")
		}
	}

	villages := []string{}
	if filter.State != "" && filter.District != "" && filter.Block != "" {
		villages, err = distinct("school_village", schoolService.SchoolFilter{
			State:    filter.State,
			District: filter.District,
			Block:    filter.Block,
		})
		if err != nil {
			log.Printf("[ERROR] [FilterOptions] villages: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil opsi filter")
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"states":    states,
		"districts": districts,
		"blocks":    blocks,
		"villages":  villages,
		// closed set — langsung dari konstanta, bukan query
		"managements": []schoolModel.ManagementType{
			schoolModel.ManagementGovernment,
			schoolModel.ManagementPrivateUnaided,
			schoolModel.ManagementPrivateAided,
			schoolModel.ManagementOther,
		},
		"locations": []schoolModel.LocationType{
			schoolModel.LocationRural,
			schoolModel.LocationUrban,
			schoolModel.LocationOther,
		},
		"school_types": []schoolModel.SchoolType{
			schoolModel.SchoolTypeCoEd,
			schoolModel.SchoolTypeGirls,
			schoolModel.SchoolTypeBoys,
			schoolModel.SchoolTypeOther,
		},
	})
}
