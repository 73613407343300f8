package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	accountstore "ims-backend/lib/account/store"
	"ims-backend/lib/feedback/store"
	roundstore "ims-backend/lib/round/store"
	"ims-backend/models"
	feedbackapimodels "ims-backend/models/api/feedback"
	dbmodels "ims-backend/models/db"
)

type fixture struct {
	db            *gorm.DB
	handler       impl
	applicationID string
	roundIDs      []string
	interviewerID string
	candidateID   string
}

func setupFixture(t *testing.T, roundCount int) fixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	err = db.AutoMigrate(
		&dbmodels.User{},
		&dbmodels.Job{},
		&dbmodels.JobApplication{},
		&dbmodels.InterviewRound{},
		&dbmodels.ApplicationRound{},
		&dbmodels.Feedback{},
	)
	require.NoError(t, err, "failed to migrate test database")

	handler := impl{
		store:        store.NewInstance(db),
		roundStore:   roundstore.NewInstance(db),
		accountStore: accountstore.NewInstance(db),
	}

	candidate := dbmodels.User{Email: "candidate@example.com", Password: "hash", FirstName: "Cara", LastName: "Candidate", Role: models.UserRoleCandidate}
	require.NoError(t, db.Create(&candidate).Error)
	interviewer := dbmodels.User{Email: "interviewer@example.com", Password: "hash", FirstName: "Ivy", LastName: "Interviewer", Role: models.UserRoleInterviewer}
	require.NoError(t, db.Create(&interviewer).Error)
	job := dbmodels.Job{Title: "Backend Engineer", Department: "Engineering", Position: models.PositionSoftwareEngineer, IsOpen: true}
	require.NoError(t, db.Create(&job).Error)
	application := dbmodels.JobApplication{JobID: job.ID, CandidateID: candidate.ID, AppliedOn: time.Now(), Status: models.ApplicationStatusInProgress}
	require.NoError(t, db.Create(&application).Error)
	template := dbmodels.InterviewRound{RoundType: models.RoundTypeTechnical}
	require.NoError(t, db.Create(&template).Error)

	roundIDs := make([]string, 0, roundCount)
	for n := 0; n < roundCount; n++ {
		round := dbmodels.ApplicationRound{
			ApplicationID: application.ID,
			RoundID:       template.ID,
			ScheduledTime: time.Now().Add(time.Duration(n+1) * time.Hour),
			InterviewerID: interviewer.ID,
			Duration:      60,
		}
		require.NoError(t, db.Create(&round).Error)
		roundIDs = append(roundIDs, round.ID)
	}

	return fixture{
		db:            db,
		handler:       handler,
		applicationID: application.ID,
		roundIDs:      roundIDs,
		interviewerID: interviewer.ID,
		candidateID:   candidate.ID,
	}
}

func (f fixture) applicationStatus(t *testing.T) models.ApplicationStatus {
	rec := dbmodels.JobApplication{}
	require.NoError(t, f.db.Where("id = ?", f.applicationID).First(&rec).Error)
	return rec.Status
}

func TestCreateByAssignedInterviewer(t *testing.T) {
	f := setupFixture(t, 2)

	id, err := f.handler.Create(f.roundIDs[0], f.interviewerID, false, feedbackapimodels.FeedbackCreateRequest{
		Rating:   4,
		Comments: "solid answers",
	})
	require.NoError(t, err)

	view, err := f.handler.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Rating)
	assert.Equal(t, "solid answers", view.Comments)
	assert.Equal(t, models.ApplicationStatusInProgress, f.applicationStatus(t),
		"one of two rounds reviewed, application must stay open")
}

func TestCreateClosesApplicationAfterLastRound(t *testing.T) {
	f := setupFixture(t, 2)

	_, err := f.handler.Create(f.roundIDs[0], f.interviewerID, false, feedbackapimodels.FeedbackCreateRequest{Rating: 4})
	require.NoError(t, err)
	_, err = f.handler.Create(f.roundIDs[1], f.interviewerID, false, feedbackapimodels.FeedbackCreateRequest{Rating: 5})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusClosed, f.applicationStatus(t))
}

func TestCreateRejectsForeignInterviewer(t *testing.T) {
	f := setupFixture(t, 1)

	other := dbmodels.User{Email: "other@example.com", Password: "hash", FirstName: "Oscar", LastName: "Other", Role: models.UserRoleInterviewer}
	require.NoError(t, f.db.Create(&other).Error)

	_, err := f.handler.Create(f.roundIDs[0], other.ID, false, feedbackapimodels.FeedbackCreateRequest{Rating: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assigned interviewer")
}

func TestCreateStaffOverride(t *testing.T) {
	f := setupFixture(t, 1)

	admin := dbmodels.User{Email: "admin@example.com", Password: "hash", FirstName: "Ann", LastName: "Admin", Role: models.UserRoleAdmin, IsStaff: true}
	require.NoError(t, f.db.Create(&admin).Error)

	_, err := f.handler.Create(f.roundIDs[0], admin.ID, true, feedbackapimodels.FeedbackCreateRequest{Rating: 3})
	assert.NoError(t, err, "staff may submit feedback for any round")
}

func TestCreateRejectsNonStaffUser(t *testing.T) {
	f := setupFixture(t, 1)

	// an admin account without the staff flag gets no override
	admin := dbmodels.User{Email: "admin@example.com", Password: "hash", FirstName: "Ann", LastName: "Admin", Role: models.UserRoleAdmin}
	require.NoError(t, f.db.Create(&admin).Error)

	_, err := f.handler.Create(f.roundIDs[0], admin.ID, false, feedbackapimodels.FeedbackCreateRequest{Rating: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assigned interviewer")
}

func TestCreateRejectsDuplicate(t *testing.T) {
	f := setupFixture(t, 1)

	_, err := f.handler.Create(f.roundIDs[0], f.interviewerID, false, feedbackapimodels.FeedbackCreateRequest{Rating: 4})
	require.NoError(t, err)

	_, err = f.handler.Create(f.roundIDs[0], f.interviewerID, false, feedbackapimodels.FeedbackCreateRequest{Rating: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already submitted")
}

func TestCreateRejectsRatingBounds(t *testing.T) {
	f := setupFixture(t, 1)

	for _, rating := range []int{0, 6} {
		_, err := f.handler.Create(f.roundIDs[0], f.interviewerID, false, feedbackapimodels.FeedbackCreateRequest{Rating: rating})
		require.Error(t, err, "rating %d must be rejected", rating)
		assert.Contains(t, err.Error(), "rating must be between 1 and 5")
	}

	for _, rating := range []int{1, 5} {
		_, err := f.handler.Create(f.roundIDs[0], f.interviewerID, false, feedbackapimodels.FeedbackCreateRequest{Rating: rating})
		if rating == 1 {
			assert.NoError(t, err, "boundary rating %d must be accepted", rating)
		} else {
			// the round already has feedback from the first boundary value
			assert.Error(t, err)
		}
	}
}

func TestCreateUnknownRound(t *testing.T) {
	f := setupFixture(t, 1)

	_, err := f.handler.Create("missing", f.interviewerID, false, feedbackapimodels.FeedbackCreateRequest{Rating: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interview round not found")
}

func TestListRoleScoping(t *testing.T) {
	f := setupFixture(t, 1)

	_, err := f.handler.Create(f.roundIDs[0], f.interviewerID, false, feedbackapimodels.FeedbackCreateRequest{Rating: 4})
	require.NoError(t, err)

	adminList, err := f.handler.List("any-admin", models.UserRoleAdmin, feedbackapimodels.FeedbackFind{})
	require.NoError(t, err)
	assert.Len(t, adminList, 1)

	ownList, err := f.handler.List(f.interviewerID, models.UserRoleInterviewer, feedbackapimodels.FeedbackFind{})
	require.NoError(t, err)
	assert.Len(t, ownList, 1)

	foreignList, err := f.handler.List("other-interviewer", models.UserRoleInterviewer, feedbackapimodels.FeedbackFind{})
	require.NoError(t, err)
	assert.Empty(t, foreignList)

	candidateList, err := f.handler.List(f.candidateID, models.UserRoleCandidate, feedbackapimodels.FeedbackFind{})
	require.NoError(t, err)
	assert.Len(t, candidateList, 1)
}
