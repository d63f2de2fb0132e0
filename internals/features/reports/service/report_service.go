package service

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/configs"
	"guidanceku_backend/internals/features/reports/model"
	helper "guidanceku_backend/internals/helpers"
)

// generation is bounded so a runaway aggregate query cannot hold the
// request open forever
const generateTimeout = 30 * time.Second

// Generate builds the report file and its row. The row is created first so
// the file name can carry the report id; any failure after that point rolls
// the row back and removes the partial file.
func Generate(db *gorm.DB, generatedBy uuid.UUID, reportType, format string, start, end time.Time) (*model.ReportModel, error) {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	if err := helper.EnsureDir(configs.ReportDir); err != nil {
		return nil, err
	}

	report := &model.ReportModel{
		ReportType:    reportType,
		Format:        format,
		PeriodStart:   start,
		PeriodEnd:     end,
		GeneratedByID: generatedBy,
	}

	// the whole transaction runs under the deadline, not just the
	// aggregate queries
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}

		report.FilePath = filepath.Join(configs.ReportDir,
			reportType+"_"+report.ID.String()+model.Extension(format))

		table, err := buildTable(ctx, tx, reportType, start, end)
		if err != nil {
			return err
		}

		if err := writeFile(report.FilePath, format, table); err != nil {
			// never leave a half-written file behind
			_ = helper.RemoveFileIfExists(report.FilePath)
			return err
		}

		if err := tx.Model(report).Update("file_path", report.FilePath).Error; err != nil {
			_ = helper.RemoveFileIfExists(report.FilePath)
			return err
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Report generation failed:", err)
		return nil, err
	}

	log.Printf("[SUCCESS] Report %s generated at %s\n", report.ID, report.FilePath)
	return report, nil
}

func buildTable(ctx context.Context, db *gorm.DB, reportType string, start, end time.Time) (Table, error) {
	period := PeriodLabel(start, end)

	switch reportType {
	case model.TypeStudentSummary:
		rows, err := loadStudentSummaries(ctx, db, start, end)
		if err != nil {
			return Table{}, err
		}
		return BuildStudentSummaryTable(period, rows), nil
	case model.TypeSessionAnalytics:
		rows, err := loadSessionAnalytics(ctx, db, start, end)
		if err != nil {
			return Table{}, err
		}
		return BuildSessionAnalyticsTable(period, rows), nil
	case model.TypeCounselorPerformance:
		rows, err := loadCounselorPerformance(ctx, db, start, end)
		if err != nil {
			return Table{}, err
		}
		return BuildCounselorPerformanceTable(period, rows), nil
	default:
		rows, err := loadCaseRecords(ctx, db, start, end)
		if err != nil {
			return Table{}, err
		}
		return BuildCaseManagementTable(period, rows), nil
	}
}

func writeFile(path, format string, table Table) error {
	switch format {
	case model.FormatExcel:
		return writeExcel(path, table)
	case model.FormatCSV:
		return writeCSV(path, table)
	default:
		return writePDF(path, table)
	}
}

// Delete removes the report row and its backing file together.
func Delete(db *gorm.DB, report *model.ReportModel) error {
	if err := db.Delete(report).Error; err != nil {
		return err
	}
	if err := helper.RemoveFileIfExists(report.FilePath); err != nil {
		log.Println("[WARN] report file removal failed:", err)
	}
	return nil
}
