package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "guidanceku_backend/internals/features/counseling/sessions/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// SessionUserRoutes mounts the counseling session endpoints.
func SessionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewSessionController(db)

	user.Get("/dashboard", ctrl.Dashboard)

	user.Post("/appointments/:id/start-session",
		authMiddleware.OnlyCounselor("start counseling sessions"),
		ctrl.StartSessionFromAppointment)

	sessions := user.Group("/sessions")
	sessions.Get("/", ctrl.GetSessions)
	sessions.Get("/:id", ctrl.GetSessionByID)
	sessions.Post("/:id/start",
		authMiddleware.OnlyCounselor("start counseling sessions"),
		ctrl.StartSession)
	sessions.Post("/:id/followup-session",
		authMiddleware.OnlyCounselor("start follow-up sessions"),
		ctrl.StartFollowUpFromSession)
	sessions.Put("/:id/end",
		authMiddleware.OnlyCounselor("end counseling sessions"),
		ctrl.EndSession)
	sessions.Put("/:id/cancel", ctrl.CancelSession)
}
