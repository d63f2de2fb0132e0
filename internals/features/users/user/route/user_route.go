package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	userController "guidanceku_backend/internals/features/users/user/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// UserUserRoutes mounts the authenticated (non-admin) user endpoints.
func UserUserRoutes(user fiber.Router, db *gorm.DB) {
	profileCtrl := userController.NewProfileController(db)
	studentCtrl := userController.NewStudentController(db)
	counselorCtrl := userController.NewCounselorController(db)

	user.Get("/me", profileCtrl.Me)
	user.Put("/me", profileCtrl.UpdateProfile)
	user.Post("/me/picture", profileCtrl.UploadProfilePicture)

	students := user.Group("/students")
	students.Get("/",
		authMiddleware.OnlyRoles("Only counselors and admins can browse students",
			constants.RoleCounselor, constants.RoleAdmin),
		studentCtrl.GetStudents)
	students.Get("/:id",
		authMiddleware.OnlyRoles("Only counselors and admins can view student details",
			constants.RoleCounselor, constants.RoleAdmin),
		studentCtrl.GetStudentByID)
	students.Put("/:id", studentCtrl.UpdateStudent)

	counselors := user.Group("/counselors")
	counselors.Get("/", counselorCtrl.GetCounselors)
	counselors.Get("/:id", counselorCtrl.GetCounselorByID)
}

// UserAdminRoutes mounts the admin-only user management endpoints.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	adminCtrl := userController.NewUserAdminController(db)

	admin.Get("/dashboard", adminCtrl.Dashboard)

	users := admin.Group("/users")
	users.Get("/", adminCtrl.GetUsers)
	users.Get("/search", adminCtrl.SearchUsers)
	users.Put("/:id/approve", adminCtrl.ApproveUser)
	users.Put("/:id/reject", adminCtrl.RejectUser)
	users.Delete("/:id", adminCtrl.DeleteUser)
}
