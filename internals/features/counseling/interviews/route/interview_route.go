package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	interviewController "guidanceku_backend/internals/features/counseling/interviews/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// InterviewUserRoutes mounts the interview form endpoints.
func InterviewUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := interviewController.NewInterviewController(db)

	user.Get("/sessions/:id/interview", ctrl.GetInterviewBySession)
	user.Get("/students/:id/interviews",
		authMiddleware.OnlyRoles("Only counselors and admins can read intake history",
			constants.RoleCounselor, constants.RoleAdmin),
		ctrl.GetInterviewsByStudent)

	interviews := user.Group("/interviews")
	interviews.Get("/:id", ctrl.GetInterviewByID)
	interviews.Put("/:id",
		authMiddleware.OnlyCounselor("submit interview forms"),
		ctrl.SubmitInterview)
}
