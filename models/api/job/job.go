package jobapimodels

import (
	"github.com/pkg/errors"
	"ims-backend/models"
	dbmodels "ims-backend/models/db"
)

type JobData struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Department  string             `json:"department"`
	Position    models.JobPosition `json:"position"`
	IsOpen      *bool              `json:"is_open"`
}

func (r JobData) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if !r.Position.IsValid() {
		return errors.New("unknown job position")
	}
	return nil
}

type JobView struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Department       string             `json:"department"`
	Position         models.JobPosition `json:"position"`
	IsOpen           bool               `json:"is_open"`
	ApplicationCount int64              `json:"application_count"`
}

func JobConvert(rec dbmodels.Job, applicationCount int64) JobView {
	return JobView{
		ID:               rec.ID,
		Title:            rec.Title,
		Description:      rec.Description,
		Department:       rec.Department,
		Position:         rec.Position,
		IsOpen:           rec.IsOpen,
		ApplicationCount: applicationCount,
	}
}

type JobFind struct {
	Department string             `json:"department"`
	Position   models.JobPosition `json:"position"`
	IsOpen     *bool              `json:"is_open"`
	Search     string             `json:"search"`
	Sort       dbmodels.JobSort   `json:"sort"`
}

func (r JobFind) Validate() error {
	if r.Position != "" && !r.Position.IsValid() {
		return errors.New("unknown job position")
	}
	return nil
}

func (r JobFind) ToFilter() dbmodels.JobFilter {
	return dbmodels.JobFilter{
		Department: r.Department,
		Position:   r.Position,
		IsOpen:     r.IsOpen,
		Search:     r.Search,
		Sort:       r.Sort,
	}
}
