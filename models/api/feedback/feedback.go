package feedbackapimodels

import (
	"github.com/pkg/errors"
	"ims-backend/models"
	roundapimodels "ims-backend/models/api/round"
	dbmodels "ims-backend/models/db"
)

type FeedbackCreateRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

func (r FeedbackCreateRequest) Validate() error {
	if r.Rating < models.MinFeedbackRating || r.Rating > models.MaxFeedbackRating {
		return errors.Errorf("rating must be between %d and %d",
			models.MinFeedbackRating, models.MaxFeedbackRating)
	}
	return nil
}

type FeedbackView struct {
	ID                      string                               `json:"id"`
	ApplicationRoundID      string                               `json:"application_round"`
	ApplicationRoundDetails *roundapimodels.ApplicationRoundView `json:"application_round_details,omitempty"`
	Rating                  int                                  `json:"rating"`
	Comments                string                               `json:"comments"`
}

func FeedbackConvert(rec dbmodels.Feedback) FeedbackView {
	view := FeedbackView{
		ID:                 rec.ID,
		ApplicationRoundID: rec.ApplicationRoundID,
		Rating:             rec.Rating,
		Comments:           rec.Comments,
	}
	if rec.ApplicationRound != nil {
		roundView := roundapimodels.ApplicationRoundConvert(*rec.ApplicationRound)
		view.ApplicationRoundDetails = &roundView
	}
	return view
}

type FeedbackFind struct {
	ApplicationRoundID string `json:"application_round"`
	ApplicationID      string `json:"application"`
	CandidateID        string `json:"candidate"`
}
