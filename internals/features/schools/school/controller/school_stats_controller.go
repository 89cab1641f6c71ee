// file: internals/features/schools/school/controller/school_stats_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	schoolService "schoolku_backend/internals/features/schools/school/service"
	helper "schoolku_backend/internals/helpers"
)

/*
🟢 GET STATISTICS — distribusi kategori untuk chart

	GET /api/public/schools/statistics?state=MP&district=Bhopal

Predicate-nya sama dengan endpoint list (termasuk strict nesting);
totalSchools dihitung sekali dari predicate, bukan dari penjumlahan
salah satu breakdown.
*/
func (sc *SchoolController) Statistics(c *fiber.Ctx) error {
	filter := schoolService.FilterFromQuery(c)
	activeOnly := !wantInactive(c)

	dist, err := schoolService.BuildDistribution(sc.DB, filter, activeOnly)
	if err != nil {
		// kegagalan store dipropagasi — jangan dikembalikan sebagai nol
		log.Printf("[ERROR] [Statistics] aggregate failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung distribusi sekolah")
	}

	return helper.JsonOK(c, "ok", dist)
}
