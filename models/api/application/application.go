package applicationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"ims-backend/models"
	accountapimodels "ims-backend/models/api/account"
	jobapimodels "ims-backend/models/api/job"
	dbmodels "ims-backend/models/db"
)

type ApplicationCreateRequest struct {
	JobID string `json:"job"`
}

func (r ApplicationCreateRequest) Validate() error {
	if r.JobID == "" {
		return errors.New("job is required")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("unknown application status")
	}
	return nil
}

type ApplicationView struct {
	ID               string                     `json:"id"`
	JobID            string                     `json:"job"`
	JobDetails       *jobapimodels.JobView      `json:"job_details,omitempty"`
	CandidateID      string                     `json:"candidate"`
	CandidateDetails *accountapimodels.UserView `json:"candidate_details,omitempty"`
	AppliedOn        time.Time                  `json:"applied_on"`
	Status           models.ApplicationStatus   `json:"status"`
	IsSelected       bool                       `json:"is_selected"`
}

func ApplicationConvert(rec dbmodels.JobApplication) ApplicationView {
	view := ApplicationView{
		ID:          rec.ID,
		JobID:       rec.JobID,
		CandidateID: rec.CandidateID,
		AppliedOn:   rec.AppliedOn,
		Status:      rec.Status,
		IsSelected:  rec.IsSelected,
	}
	if rec.Job != nil {
		jobView := jobapimodels.JobConvert(*rec.Job, 0)
		view.JobDetails = &jobView
	}
	if rec.Candidate != nil {
		candidateView := accountapimodels.UserConvert(*rec.Candidate)
		view.CandidateDetails = &candidateView
	}
	return view
}

type ApplicationFind struct {
	JobID      string                   `json:"job"`
	Status     models.ApplicationStatus `json:"status"`
	IsSelected *bool                    `json:"is_selected"`
	Sort       dbmodels.ApplicationSort `json:"sort"`
}

func (r ApplicationFind) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return errors.New("unknown application status")
	}
	return nil
}

func (r ApplicationFind) ToFilter() dbmodels.ApplicationFilter {
	return dbmodels.ApplicationFilter{
		JobID:      r.JobID,
		Status:     r.Status,
		IsSelected: r.IsSelected,
		Sort:       r.Sort,
	}
}
