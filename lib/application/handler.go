package application

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"ims-backend/db"
	"ims-backend/lib/application/store"
	jobstore "ims-backend/lib/job/store"
	"ims-backend/models"
	applicationapimodels "ims-backend/models/api/application"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	Apply(candidateID string, request applicationapimodels.ApplicationCreateRequest) (id string, err error)
	Get(id string) (item applicationapimodels.ApplicationView, err error)
	List(userID string, role models.UserRole, request applicationapimodels.ApplicationFind) (list []applicationapimodels.ApplicationView, err error)
	ListByJob(jobID string) (list []applicationapimodels.ApplicationView, err error)
	UpdateStatus(id string, request applicationapimodels.StatusUpdateRequest) error
	SelectCandidate(id string) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    store.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    store.Provider
	jobStore jobstore.Provider
}

func (i impl) Apply(candidateID string, request applicationapimodels.ApplicationCreateRequest) (id string, err error) {
	logger := log.
		WithField("job_id", request.JobID).
		WithField("candidate_id", candidateID)
	err = request.Validate()
	if err != nil {
		return "", err
	}
	job, err := i.jobStore.GetByID(request.JobID)
	if err != nil {
		logger.WithError(err).Error("failed to find job")
		return "", err
	}
	if job == nil {
		return "", errors.New("job not found")
	}
	exist, err := i.store.ExistByJobAndCandidate(request.JobID, candidateID)
	if err != nil {
		logger.WithError(err).Error("failed to check for existing application")
		return "", err
	}
	if exist {
		return "", errors.New("you have already applied for this job")
	}
	id, err = i.store.Create(dbmodels.JobApplication{
		JobID:       request.JobID,
		CandidateID: candidateID,
	})
	if err != nil {
		// the unique index backstops concurrent submissions
		if db.IsDuplicateErr(err) {
			return "", errors.New("you have already applied for this job")
		}
		logger.WithError(err).Error("failed to create application")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("application submitted")
	return id, nil
}

func (i impl) Get(id string) (item applicationapimodels.ApplicationView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, gorm.ErrRecordNotFound
	}
	return applicationapimodels.ApplicationConvert(*rec), nil
}

// List scopes the result by role: admins see everything, interviewers see
// applications they have a round on, candidates see only their own.
func (i impl) List(userID string, role models.UserRole, request applicationapimodels.ApplicationFind) (list []applicationapimodels.ApplicationView, err error) {
	err = request.Validate()
	if err != nil {
		return nil, err
	}
	filter := request.ToFilter()
	var recList []dbmodels.JobApplication
	switch role {
	case models.UserRoleAdmin:
		recList, err = i.store.Find(filter)
	case models.UserRoleInterviewer:
		recList, err = i.store.FindByInterviewer(userID, filter)
	case models.UserRoleCandidate:
		recList, err = i.store.FindByCandidate(userID, filter)
	default:
		return nil, errors.Errorf("unknown role: %s", role)
	}
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) ListByJob(jobID string) (list []applicationapimodels.ApplicationView, err error) {
	recList, err := i.store.FindByJob(jobID)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) UpdateStatus(id string, request applicationapimodels.StatusUpdateRequest) error {
	err := request.Validate()
	if err != nil {
		return err
	}
	err = i.store.UpdateStatus(id, request.Status)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		WithField("status", request.Status).
		Info("application status updated")
	return nil
}

func (i impl) SelectCandidate(id string) error {
	err := i.store.SelectCandidate(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("candidate selected, remaining applications closed")
	return nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("application deleted")
	return nil
}

func convertList(recList []dbmodels.JobApplication) []applicationapimodels.ApplicationView {
	list := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicationapimodels.ApplicationConvert(rec))
	}
	return list
}
