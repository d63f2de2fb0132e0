package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "guidanceku_backend/internals/features/reports/controller"
)

// ReportAdminRoutes mounts the admin-only reporting endpoints.
func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := admin.Group("/reports")
	reports.Post("/", ctrl.GenerateReport)
	reports.Get("/", ctrl.GetReports)
	reports.Get("/:id", ctrl.GetReportByID)
	reports.Get("/:id/download", ctrl.DownloadReport)
	reports.Delete("/:id", ctrl.DeleteReport)
}
