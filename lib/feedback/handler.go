package feedback

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"ims-backend/db"
	accountstore "ims-backend/lib/account/store"
	"ims-backend/lib/email"
	"ims-backend/lib/feedback/store"
	"ims-backend/lib/notify"
	roundstore "ims-backend/lib/round/store"
	"ims-backend/lib/utils/helpers"
	"ims-backend/models"
	feedbackapimodels "ims-backend/models/api/feedback"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	Create(applicationRoundID, userID string, isStaff bool, request feedbackapimodels.FeedbackCreateRequest) (id string, err error)
	Get(id string) (item feedbackapimodels.FeedbackView, err error)
	List(userID string, role models.UserRole, request feedbackapimodels.FeedbackFind) (list []feedbackapimodels.FeedbackView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        store.NewInstance(db.DB),
		roundStore:   roundstore.NewInstance(db.DB),
		accountStore: accountstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        store.Provider
	roundStore   roundstore.Provider
	accountStore accountstore.Provider
}

func (i impl) Create(applicationRoundID, userID string, isStaff bool, request feedbackapimodels.FeedbackCreateRequest) (id string, err error) {
	logger := log.
		WithField("application_round_id", applicationRoundID).
		WithField("user_id", userID)
	err = request.Validate()
	if err != nil {
		return "", err
	}
	round, err := i.roundStore.GetByID(applicationRoundID)
	if err != nil {
		logger.WithError(err).Error("failed to find interview round")
		return "", err
	}
	if round == nil {
		return "", errors.New("interview round not found")
	}
	if round.InterviewerID != userID && !isStaff {
		return "", errors.New("feedback can only be submitted by the assigned interviewer")
	}
	exist, err := i.store.ExistByApplicationRound(applicationRoundID)
	if err != nil {
		logger.WithError(err).Error("failed to check for existing feedback")
		return "", err
	}
	if exist {
		return "", errors.New("feedback already submitted for this round")
	}
	id, closed, err := i.store.CreateAndCheckCompletion(dbmodels.Feedback{
		ApplicationRoundID: applicationRoundID,
		Rating:             request.Rating,
		Comments:           request.Comments,
	}, round.ApplicationID)
	if err != nil {
		if db.IsDuplicateErr(err) {
			return "", errors.New("feedback already submitted for this round")
		}
		logger.WithError(err).Error("failed to create feedback")
		return "", err
	}
	logger = logger.WithField("rec_id", id)
	if closed {
		logger.
			WithField("application_id", round.ApplicationID).
			Info("all rounds reviewed, application closed")
	}
	logger.Info("feedback submitted")
	i.enqueueNotifications(*round, request)
	return id, nil
}

// enqueueNotifications fires the best-effort emails after the feedback is
// committed: one to the candidate without the rating, one per admin with the
// full rating and comments.
func (i impl) enqueueNotifications(round dbmodels.ApplicationRound, request feedbackapimodels.FeedbackCreateRequest) {
	if notify.Instance == nil || email.Instance == nil {
		return
	}
	if round.Application == nil || round.Application.Candidate == nil || round.Application.Job == nil {
		log.
			WithField("application_round_id", round.ID).
			Warn("feedback notification skipped, round associations not loaded")
		return
	}
	candidate := *round.Application.Candidate
	jobTitle := round.Application.Job.Title
	interviewerName := ""
	if round.Interviewer != nil {
		interviewerName = round.Interviewer.FullName()
	}
	feedbackDate := helpers.FormatEmailTime(round.ScheduledTime)

	candidateData := email.FeedbackEmailData{
		Subject:         fmt.Sprintf("Interview Feedback Received - %s", jobTitle),
		RecipientName:   candidate.FullName(),
		CandidateName:   candidate.FullName(),
		JobTitle:        jobTitle,
		InterviewerName: interviewerName,
		FeedbackDate:    feedbackDate,
		Comments:        request.Comments,
		IsCandidate:     true,
	}
	candidateEmail := candidate.Email
	notify.Instance.Enqueue("feedback_candidate", func() error {
		return email.Instance.SendFeedbackEmail(candidateEmail, candidateData)
	})

	adminEmails, err := i.accountStore.EmailsByRole(models.UserRoleAdmin)
	if err != nil {
		log.WithError(err).Error("failed to list admin recipients")
		return
	}
	for _, adminEmail := range adminEmails {
		adminData := email.FeedbackEmailData{
			Subject:         fmt.Sprintf("New Interview Feedback - %s - %s", candidate.FullName(), jobTitle),
			RecipientName:   "Admin",
			CandidateName:   candidate.FullName(),
			JobTitle:        jobTitle,
			InterviewerName: interviewerName,
			FeedbackDate:    feedbackDate,
			Rating:          request.Rating,
			Comments:        request.Comments,
			IsAdmin:         true,
		}
		to := adminEmail
		notify.Instance.Enqueue("feedback_admin", func() error {
			return email.Instance.SendFeedbackEmail(to, adminData)
		})
	}
}

func (i impl) Get(id string) (item feedbackapimodels.FeedbackView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return feedbackapimodels.FeedbackView{}, err
	}
	if rec == nil {
		return feedbackapimodels.FeedbackView{}, gorm.ErrRecordNotFound
	}
	return feedbackapimodels.FeedbackConvert(*rec), nil
}

// List scopes the result by role: admins see everything, interviewers see
// feedback on rounds they conducted, candidates see feedback on their own
// applications.
func (i impl) List(userID string, role models.UserRole, request feedbackapimodels.FeedbackFind) (list []feedbackapimodels.FeedbackView, err error) {
	filter := store.Filter{
		ApplicationRoundID: request.ApplicationRoundID,
		ApplicationID:      request.ApplicationID,
		CandidateID:        request.CandidateID,
	}
	switch role {
	case models.UserRoleAdmin:
	case models.UserRoleInterviewer:
		filter.InterviewerID = userID
	case models.UserRoleCandidate:
		filter.CandidateID = userID
	default:
		return nil, errors.Errorf("unknown role: %s", role)
	}
	recList, err := i.store.Find(filter)
	if err != nil {
		return nil, err
	}
	list = make([]feedbackapimodels.FeedbackView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, feedbackapimodels.FeedbackConvert(rec))
	}
	return list, nil
}
