package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	apptController "guidanceku_backend/internals/features/counseling/appointments/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// AppointmentUserRoutes mounts the appointment endpoints under the
// authenticated group.
func AppointmentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := apptController.NewAppointmentController(db)

	appts := user.Group("/appointments")
	appts.Post("/",
		authMiddleware.OnlyStudent("book appointments"),
		ctrl.CreateAppointment)
	appts.Get("/", ctrl.GetAppointments)
	appts.Get("/:id", ctrl.GetAppointmentByID)
	appts.Put("/:id/approve",
		authMiddleware.OnlyCounselor("approve appointments"),
		ctrl.ApproveAppointment)
	appts.Put("/:id/decline",
		authMiddleware.OnlyCounselor("decline appointments"),
		ctrl.DeclineAppointment)
	appts.Put("/:id/cancel",
		authMiddleware.OnlyStudent("cancel appointments"),
		ctrl.CancelAppointment)
	appts.Put("/:id/reschedule",
		authMiddleware.OnlyStudent("reschedule appointments"),
		ctrl.RescheduleAppointment)
}
