package dbmodels

import (
	"github.com/pkg/errors"
	"ims-backend/models"
)

// Feedback is immutable once created; there are no update flows.
type Feedback struct {
	BaseModel
	ApplicationRoundID string `gorm:"type:varchar(36);uniqueIndex"`
	ApplicationRound   *ApplicationRound
	Comments           string `gorm:"type:text"`
	Rating             int
}

func (f Feedback) Validate() error {
	if f.ApplicationRoundID == "" {
		return errors.New("application round is required")
	}
	if f.Rating < models.MinFeedbackRating || f.Rating > models.MaxFeedbackRating {
		return errors.Errorf("rating must be between %d and %d",
			models.MinFeedbackRating, models.MaxFeedbackRating)
	}
	return nil
}
