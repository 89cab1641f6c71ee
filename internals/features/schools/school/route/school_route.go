// file: internals/features/schools/school/route/school_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	controller "schoolku_backend/internals/features/schools/school/controller"
	authMid "schoolku_backend/internals/middlewares/auth"
)

/*
🔓 Public: baca data sekolah tanpa token.

	GET /api/public/schools
	GET /api/public/schools/statistics
	GET /api/public/schools/filters
	GET /api/public/schools/:school_id
*/
func SchoolPublicRoutes(api fiber.Router, db *gorm.DB) {
	sc := controller.NewSchoolController(db, validator.New())

	schools := api.Group("/schools")
	schools.Get("/", sc.List)
	schools.Get("/statistics", sc.Statistics) // sebelum :school_id agar tidak ketangkep param
	schools.Get("/filters", sc.FilterOptions)
	schools.Get("/:school_id", sc.GetByID)
}

/*
🔒 Admin: semua mutasi di belakang JWT + role admin/owner.

	POST   /api/a/schools
	PATCH  /api/a/schools/:school_id
	DELETE /api/a/schools/:school_id
	POST   /api/a/schools/import
*/
func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	sc := controller.NewSchoolController(db, validator.New())

	adminGuard := authMid.OnlyRolesSlice(
		constants.RoleErrorAdmin("mengelola data sekolah"),
		constants.AdminAndAbove,
	)

	schools := api.Group("/schools", adminGuard)
	schools.Post("/", sc.Create)
	schools.Post("/import", sc.ImportCSV)
	schools.Patch("/:school_id", sc.Patch)
	schools.Delete("/:school_id", sc.Delete)
}
