package round

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"ims-backend/db"
	accountstore "ims-backend/lib/account/store"
	applicationstore "ims-backend/lib/application/store"
	"ims-backend/lib/round/store"
	"ims-backend/models"
	roundapimodels "ims-backend/models/api/round"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	CreateTemplate(request roundapimodels.RoundTemplateData) (id string, err error)
	ListTemplates() (list []roundapimodels.RoundTemplateView, err error)
	DeleteTemplate(id string) error

	Schedule(request roundapimodels.ScheduleRoundRequest, applicationID string) (id string, err error)
	Get(id string) (item roundapimodels.ApplicationRoundView, err error)
	ListByApplication(applicationID string) (list []roundapimodels.ApplicationRoundView, err error)
	ListByInterviewer(interviewerID string) (list []roundapimodels.ApplicationRoundView, err error)
	ListUpcoming(interviewerID string) (list []roundapimodels.ApplicationRoundView, err error)
	Update(id string, request roundapimodels.ScheduleRoundUpdateRequest) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            store.NewInstance(db.DB),
		accountStore:     accountstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		now:              time.Now,
	}
}

type impl struct {
	store            store.Provider
	accountStore     accountstore.Provider
	applicationStore applicationstore.Provider
	now              func() time.Time
}

func (i impl) CreateTemplate(request roundapimodels.RoundTemplateData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	id, err = i.store.CreateTemplate(dbmodels.InterviewRound{
		RoundType: request.RoundType,
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("round_type", request.RoundType).
		Info("round template created")
	return id, nil
}

func (i impl) ListTemplates() (list []roundapimodels.RoundTemplateView, err error) {
	recList, err := i.store.ListTemplates()
	if err != nil {
		return nil, err
	}
	list = make([]roundapimodels.RoundTemplateView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, roundapimodels.RoundTemplateConvert(rec))
	}
	return list, nil
}

func (i impl) DeleteTemplate(id string) error {
	return i.store.DeleteTemplate(id)
}

func (i impl) Schedule(request roundapimodels.ScheduleRoundRequest, applicationID string) (id string, err error) {
	logger := log.
		WithField("application_id", applicationID).
		WithField("interviewer_id", request.InterviewerID)
	err = request.Validate()
	if err != nil {
		return "", err
	}
	if request.ScheduledTime.Before(i.now()) {
		return "", errors.New("scheduled time cannot be in the past")
	}
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to find application")
		return "", err
	}
	if application == nil {
		return "", errors.New("application not found")
	}
	template, err := i.store.GetTemplateByID(request.RoundID)
	if err != nil {
		logger.WithError(err).Error("failed to find round template")
		return "", err
	}
	if template == nil {
		return "", errors.New("round template not found")
	}
	interviewer, err := i.accountStore.GetByID(request.InterviewerID)
	if err != nil {
		logger.WithError(err).Error("failed to find interviewer")
		return "", err
	}
	if interviewer == nil || interviewer.Role != models.UserRoleInterviewer {
		return "", errors.New("assigned user is not an interviewer")
	}
	id, err = i.store.Create(dbmodels.ApplicationRound{
		ApplicationID: applicationID,
		RoundID:       request.RoundID,
		ScheduledTime: request.ScheduledTime,
		InterviewerID: request.InterviewerID,
		Duration:      request.Duration,
	})
	if err != nil {
		logger.WithError(err).Error("failed to schedule round")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		WithField("scheduled_time", request.ScheduledTime).
		Info("interview round scheduled")
	return id, nil
}

func (i impl) Get(id string) (item roundapimodels.ApplicationRoundView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return roundapimodels.ApplicationRoundView{}, err
	}
	if rec == nil {
		return roundapimodels.ApplicationRoundView{}, gorm.ErrRecordNotFound
	}
	return roundapimodels.ApplicationRoundConvert(*rec), nil
}

func (i impl) ListByApplication(applicationID string) (list []roundapimodels.ApplicationRoundView, err error) {
	recList, err := i.store.FindByApplication(applicationID)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) ListByInterviewer(interviewerID string) (list []roundapimodels.ApplicationRoundView, err error) {
	recList, err := i.store.FindByInterviewer(interviewerID)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

// ListUpcoming returns future rounds ordered by scheduled time; an empty
// interviewerID means all interviewers.
func (i impl) ListUpcoming(interviewerID string) (list []roundapimodels.ApplicationRoundView, err error) {
	recList, err := i.store.FindFuture(i.now(), interviewerID)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) Update(id string, request roundapimodels.ScheduleRoundUpdateRequest) error {
	updMap := map[string]interface{}{}
	if request.InterviewerID != "" {
		interviewer, err := i.accountStore.GetByID(request.InterviewerID)
		if err != nil {
			return err
		}
		if interviewer == nil || interviewer.Role != models.UserRoleInterviewer {
			return errors.New("assigned user is not an interviewer")
		}
		updMap["interviewer_id"] = request.InterviewerID
	}
	if !request.ScheduledTime.IsZero() {
		if request.ScheduledTime.Before(i.now()) {
			return errors.New("scheduled time cannot be in the past")
		}
		updMap["scheduled_time"] = request.ScheduledTime
	}
	if request.Duration > 0 {
		updMap["duration"] = request.Duration
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("interview round updated")
	return nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("interview round deleted")
	return nil
}

func convertList(recList []dbmodels.ApplicationRound) []roundapimodels.ApplicationRoundView {
	list := make([]roundapimodels.ApplicationRoundView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, roundapimodels.ApplicationRoundConvert(rec))
	}
	return list
}
