package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRound struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	Application   *JobApplication
	RoundID       string `gorm:"type:varchar(36)"`
	Round         *InterviewRound `gorm:"foreignKey:RoundID"`
	ScheduledTime time.Time       `gorm:"index"`
	InterviewerID string          `gorm:"type:varchar(36);index"`
	Interviewer   *User           `gorm:"foreignKey:InterviewerID"`
	Duration      int
}

func (r *ApplicationRound) AfterDelete(tx *gorm.DB) (err error) {
	if r.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("application_round_id = ?", r.ID).Delete(&Feedback{})
	return
}

func (r ApplicationRound) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("application is required")
	}
	if r.RoundID == "" {
		return errors.New("round template is required")
	}
	if r.InterviewerID == "" {
		return errors.New("interviewer is required")
	}
	if r.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}
