package statisticsapimodels

// JobStatisticsView mirrors one row of the grouped job aggregation:
// status buckets partition the total, average rating defaults to 0.0
// when no feedback exists.
type JobStatisticsView struct {
	JobID                  string  `json:"job_id"`
	JobTitle               string  `json:"job_title"`
	TotalApplications      int64   `json:"total_applications"`
	NewApplications        int64   `json:"new_applications"`
	InProgressApplications int64   `json:"in_progress_applications"`
	ClosedApplications     int64   `json:"closed_applications"`
	SelectedApplications   int64   `json:"selected_applications"`
	AverageRating          float64 `json:"average_rating"`
}
