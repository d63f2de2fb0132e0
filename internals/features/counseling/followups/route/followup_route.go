package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	followUpController "guidanceku_backend/internals/features/counseling/followups/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// FollowUpUserRoutes mounts the follow-up endpoints.
func FollowUpUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := followUpController.NewFollowUpController(db)

	followUps := user.Group("/followups")
	followUps.Get("/", ctrl.GetFollowUps)
	followUps.Put("/:id/complete",
		authMiddleware.OnlyCounselor("complete follow-ups"),
		ctrl.CompleteFollowUp)
}
