package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"ims-backend/models"
)

type JobApplication struct {
	BaseModel
	JobID       string `gorm:"type:varchar(36);uniqueIndex:idx_job_candidate"`
	Job         *Job
	CandidateID string `gorm:"type:varchar(36);uniqueIndex:idx_job_candidate"`
	Candidate   *User  `gorm:"foreignKey:CandidateID"`
	AppliedOn   time.Time
	Status      models.ApplicationStatus `gorm:"type:varchar(10);default:new;index"`
	IsSelected  bool
}

func (a *JobApplication) AfterDelete(tx *gorm.DB) (err error) {
	if a.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("application_id = ?", a.ID).Delete(&ApplicationRound{})
	tx.Where("application_id = ?", a.ID).Delete(&Resume{})
	return
}

func (a JobApplication) Validate() error {
	if a.JobID == "" {
		return errors.New("job is required")
	}
	if a.CandidateID == "" {
		return errors.New("candidate is required")
	}
	if a.Status != "" && !a.Status.IsValid() {
		return errors.New("unknown application status")
	}
	return nil
}

type ApplicationSort struct {
	AppliedOnDesc bool `json:"applied_on_desc"`
	ByStatus      bool `json:"by_status"`
}

type ApplicationFilter struct {
	JobID      string                   `json:"job_id"`
	Status     models.ApplicationStatus `json:"status"`
	IsSelected *bool                    `json:"is_selected"`
	Sort       ApplicationSort          `json:"sort"`
}
