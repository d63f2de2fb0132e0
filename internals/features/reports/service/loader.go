package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	sessionModel "guidanceku_backend/internals/features/counseling/sessions/model"
)

// The loaders pull period-bound aggregates the pure builders turn into
// tables. All of them run against created_at of the session rows.

func loadStudentSummaries(ctx context.Context, db *gorm.DB, start, end time.Time) ([]StudentSummary, error) {
	var out []StudentSummary
	err := db.WithContext(ctx).Raw(`
		SELECT u.first_name || ' ' || u.last_name AS name,
		       s.course AS course,
		       s.year AS year,
		       COUNT(gs.id) AS session_count
		FROM students s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN guidance_sessions gs
		       ON gs.student_id = s.id
		      AND gs.created_at >= ? AND gs.created_at < ?
		GROUP BY u.first_name, u.last_name, s.course, s.year
		ORDER BY name`, start, end.AddDate(0, 0, 1)).
		Scan(&out).Error
	return out, err
}

func loadSessionAnalytics(ctx context.Context, db *gorm.DB, start, end time.Time) ([]SessionAnalytics, error) {
	var out []SessionAnalytics
	err := db.WithContext(ctx).Raw(`
		SELECT DATE(created_at) AS day,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = ?) AS completed,
		       COUNT(*) FILTER (WHERE status = ?) AS ongoing
		FROM guidance_sessions
		WHERE created_at >= ? AND created_at < ?
		GROUP BY DATE(created_at)
		ORDER BY day`,
		sessionModel.SessionCompleted, sessionModel.SessionInProgress,
		start, end.AddDate(0, 0, 1)).
		Scan(&out).Error
	return out, err
}

func loadCounselorPerformance(ctx context.Context, db *gorm.DB, start, end time.Time) ([]CounselorPerformance, error) {
	var out []CounselorPerformance
	err := db.WithContext(ctx).Raw(`
		SELECT u.first_name || ' ' || u.last_name AS name,
		       COUNT(gs.id) AS total,
		       COUNT(gs.id) FILTER (WHERE gs.status = ?) AS completed
		FROM counselors c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN guidance_sessions gs
		       ON gs.counselor_id = c.id
		      AND gs.created_at >= ? AND gs.created_at < ?
		GROUP BY u.first_name, u.last_name
		ORDER BY name`,
		sessionModel.SessionCompleted, start, end.AddDate(0, 0, 1)).
		Scan(&out).Error
	return out, err
}

func loadCaseRecords(ctx context.Context, db *gorm.DB, start, end time.Time) ([]CaseRecord, error) {
	var out []CaseRecord
	err := db.WithContext(ctx).Raw(`
		SELECT gs.id AS session_id,
		       su.first_name || ' ' || su.last_name AS student,
		       gs.status AS status,
		       COUNT(fu.id) AS follow_up_count,
		       gs.updated_at AS updated_at
		FROM guidance_sessions gs
		JOIN students s ON s.id = gs.student_id
		JOIN users su ON su.id = s.user_id
		LEFT JOIN follow_ups fu ON fu.session_id = gs.id
		WHERE gs.created_at >= ? AND gs.created_at < ?
		GROUP BY gs.id, su.first_name, su.last_name, gs.status, gs.updated_at
		ORDER BY gs.created_at`,
		start, end.AddDate(0, 0, 1)).
		Scan(&out).Error
	return out, err
}
