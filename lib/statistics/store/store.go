package store

import (
	"gorm.io/gorm"
)

// JobStatisticsRow is one job's aggregate line. DISTINCT counters keep the
// round/feedback joins from multiplying application rows.
type JobStatisticsRow struct {
	JobID                  string
	JobTitle               string
	TotalApplications      int64
	NewApplications        int64
	InProgressApplications int64
	ClosedApplications     int64
	SelectedApplications   int64
	AverageRating          float64
}

type Provider interface {
	JobStatistics(jobID string) (list []JobStatisticsRow, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

const jobStatisticsQuery = `
SELECT
    j.id AS job_id,
    j.title AS job_title,
    COUNT(DISTINCT a.id) AS total_applications,
    COUNT(DISTINCT CASE WHEN a.status = 'new' THEN a.id END) AS new_applications,
    COUNT(DISTINCT CASE WHEN a.status = 'inprogress' THEN a.id END) AS in_progress_applications,
    COUNT(DISTINCT CASE WHEN a.status = 'closed' THEN a.id END) AS closed_applications,
    COUNT(DISTINCT CASE WHEN a.is_selected THEN a.id END) AS selected_applications,
    COALESCE(ROUND(AVG(f.rating), 1), 0) AS average_rating
FROM jobs j
LEFT JOIN job_applications a ON a.job_id = j.id
LEFT JOIN application_rounds r ON r.application_id = a.id
LEFT JOIN feedbacks f ON f.application_round_id = r.id
`

// JobStatistics aggregates the whole pipeline per job with a left-join
// chain, so jobs without applications still show up with zero counts.
func (i impl) JobStatistics(jobID string) (list []JobStatisticsRow, err error) {
	list = []JobStatisticsRow{}
	query := jobStatisticsQuery
	args := []interface{}{}
	if jobID != "" {
		query += "WHERE j.id = ?\n"
		args = append(args, jobID)
	}
	query += "GROUP BY j.id, j.title\nORDER BY j.title ASC"
	err = i.db.
		Raw(query, args...).
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
