package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "guidanceku_backend/internals/features/users/auth/controller"
	middlewares "guidanceku_backend/internals/middlewares"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	// endpoints that need a live token
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
	auth.Post("/change-password", authMiddleware.AuthMiddleware(db), ctrl.ChangePassword)
}
