// file: internals/features/schools/school/controller/school_import_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	schoolService "schoolku_backend/internals/features/schools/school/service"
	helper "schoolku_backend/internals/helpers"
)

/*
🟢 IMPORT CSV — bulk ingest data UDISE (admin)

	POST /api/a/schools/import  (multipart, field "file")

Baris jelek di-skip + dicatat; duplikat udise_code dilewati.
*/
func (sc *SchoolController) ImportCSV(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File CSV wajib diunggah (field \"file\")")
	}

	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file upload")
	}
	defer f.Close()

	rows, parseSummary, err := schoolService.ParseSchoolsCSV(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	importSummary, err := schoolService.ImportSchools(sc.DB, rows, creatorFromLocals(c))
	if err != nil {
		log.Printf("[ERROR] [ImportCSV] import gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Import gagal di tengah jalan")
	}

	summary := schoolService.ImportSummary{
		Imported: importSummary.Imported,
		Skipped:  parseSummary.Skipped + importSummary.Skipped,
		Errors:   append(parseSummary.Errors, importSummary.Errors...),
	}

	log.Printf("[SUCCESS] [ImportCSV] imported=%d skipped=%d", summary.Imported, summary.Skipped)
	return helper.JsonOK(c, "Import selesai", summary)
}
