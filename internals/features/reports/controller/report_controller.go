package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/features/reports/dto"
	"guidanceku_backend/internals/features/reports/model"
	"guidanceku_backend/internals/features/reports/service"
	helper "guidanceku_backend/internals/helpers"
)

var validate = validator.New()

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// POST /api/a/reports — generate a new report file
func (rc *ReportController) GenerateReport(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var input dto.GenerateReportInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if !model.ValidType(input.ReportType) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Unknown report_type")
	}
	if !model.ValidFormat(input.Format) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Unknown format, expected pdf, excel or csv")
	}
	start, end, err := input.ResolvePeriod(time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	report, err := service.Generate(rc.DB, userID, input.ReportType, input.Format, start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Report generation failed")
	}
	return helper.JsonCreated(c, "Report generated successfully", report)
}

// GET /api/a/reports
func (rc *ReportController) GetReports(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := rc.DB.Model(&model.ReportModel{}).Preload("GeneratedBy")
	if rType := c.Query("report_type"); rType != "" {
		q = q.Where("report_type = ?", rType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count reports:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reports")
	}

	var reports []model.ReportModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&reports).Error; err != nil {
		log.Println("[ERROR] Failed to fetch reports:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reports")
	}

	return helper.JsonList(c, "Reports fetched successfully", reports,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/reports/:id — report metadata
func (rc *ReportController) GetReportByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var report model.ReportModel
	if err := rc.DB.Preload("GeneratedBy").First(&report, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}
	return helper.JsonOK(c, "Report fetched successfully", report)
}

// GET /api/a/reports/:id/download — stream the backing file
func (rc *ReportController) DownloadReport(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var report model.ReportModel
	if err := rc.DB.First(&report, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}

	return c.Download(report.FilePath)
}

// DELETE /api/a/reports/:id — removes the row and the file
func (rc *ReportController) DeleteReport(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var report model.ReportModel
	if err := rc.DB.First(&report, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}

	if err := service.Delete(rc.DB, &report); err != nil {
		log.Println("[ERROR] Failed to delete report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete report")
	}
	return helper.JsonDeleted(c, "Report deleted successfully", fiber.Map{"id": id})
}
