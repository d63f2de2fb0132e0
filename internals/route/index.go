// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	apptRoute "guidanceku_backend/internals/features/counseling/appointments/route"
	followUpRoute "guidanceku_backend/internals/features/counseling/followups/route"
	interviewRoute "guidanceku_backend/internals/features/counseling/interviews/route"
	sessionRoute "guidanceku_backend/internals/features/counseling/sessions/route"
	reportRoute "guidanceku_backend/internals/features/reports/route"
	authRoute "guidanceku_backend/internals/features/users/auth/route"
	userRoute "guidanceku_backend/internals/features/users/user/route"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	public.Get("/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	})

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserUserRoutes(user, db)
	apptRoute.AppointmentUserRoutes(user, db)
	sessionRoute.SessionUserRoutes(user, db)
	interviewRoute.InterviewUserRoutes(user, db)
	followUpRoute.FollowUpUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyAdmin("administration"),
	)
	userRoute.UserAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)

	log.Println("[SUCCESS] All routes registered")
}
