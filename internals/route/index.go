// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolRoute "schoolku_backend/internals/features/schools/school/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	authMid "schoolku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// 🔓 baca sekolah + statistik tanpa token
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	schoolRoute.SchoolPublicRoutes(public, db)

	// ===================== ADMIN =====================
	// 🔒 mutasi data di belakang JWT; role dicek per-route
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", authMid.AuthMiddleware(db))
	schoolRoute.SchoolAdminRoutes(admin, db)
}
