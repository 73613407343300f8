package dbmodels

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"ims-backend/models"
)

type Job struct {
	BaseModel
	Title       string             `gorm:"type:varchar(100)"`
	Description string             `gorm:"type:text"`
	Department  string             `gorm:"type:varchar(50);index"`
	Position    models.JobPosition `gorm:"type:varchar(30);index"`
	IsOpen      bool               `gorm:"default:true"`
}

func (j *Job) AfterDelete(tx *gorm.DB) (err error) {
	if j.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("job_id = ?", j.ID).Delete(&JobApplication{})
	return
}

func (j Job) Validate() error {
	if j.Title == "" {
		return errors.New("title is required")
	}
	if !j.Position.IsValid() {
		return errors.New("unknown job position")
	}
	return nil
}

type JobSort struct {
	CreatedAtDesc bool `json:"created_at_desc"`
}

type JobFilter struct {
	Department string             `json:"department"`
	Position   models.JobPosition `json:"position"`
	IsOpen     *bool              `json:"is_open"`
	Search     string             `json:"search"`
	Sort       JobSort            `json:"sort"`
}
