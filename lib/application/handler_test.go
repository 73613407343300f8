package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"ims-backend/lib/application/store"
	jobstore "ims-backend/lib/job/store"
	"ims-backend/models"
	applicationapimodels "ims-backend/models/api/application"
	dbmodels "ims-backend/models/db"
)

type fixture struct {
	db          *gorm.DB
	handler     impl
	jobID       string
	candidateID string
}

func setupFixture(t *testing.T) fixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	err = db.AutoMigrate(
		&dbmodels.User{},
		&dbmodels.Job{},
		&dbmodels.JobApplication{},
		&dbmodels.InterviewRound{},
		&dbmodels.ApplicationRound{},
	)
	require.NoError(t, err, "failed to migrate test database")

	handler := impl{
		store:    store.NewInstance(db),
		jobStore: jobstore.NewInstance(db),
	}

	candidate := dbmodels.User{Email: "candidate@example.com", Password: "hash", FirstName: "Cara", LastName: "Candidate", Role: models.UserRoleCandidate}
	require.NoError(t, db.Create(&candidate).Error)
	job := dbmodels.Job{Title: "Backend Engineer", Department: "Engineering", Position: models.PositionSoftwareEngineer, IsOpen: true}
	require.NoError(t, db.Create(&job).Error)

	return fixture{
		db:          db,
		handler:     handler,
		jobID:       job.ID,
		candidateID: candidate.ID,
	}
}

func TestApply(t *testing.T) {
	f := setupFixture(t)

	id, err := f.handler.Apply(f.candidateID, applicationapimodels.ApplicationCreateRequest{JobID: f.jobID})
	require.NoError(t, err)

	view, err := f.handler.Get(id)
	require.NoError(t, err)
	assert.Equal(t, f.jobID, view.JobID)
	assert.Equal(t, f.candidateID, view.CandidateID)
	assert.Equal(t, models.ApplicationStatusNew, view.Status)
	require.NotNil(t, view.JobDetails)
	assert.Equal(t, "Backend Engineer", view.JobDetails.Title)
}

func TestApplyRejectsDuplicate(t *testing.T) {
	f := setupFixture(t)

	_, err := f.handler.Apply(f.candidateID, applicationapimodels.ApplicationCreateRequest{JobID: f.jobID})
	require.NoError(t, err)

	_, err = f.handler.Apply(f.candidateID, applicationapimodels.ApplicationCreateRequest{JobID: f.jobID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already applied")
}

func TestApplyRejectsUnknownJob(t *testing.T) {
	f := setupFixture(t)

	_, err := f.handler.Apply(f.candidateID, applicationapimodels.ApplicationCreateRequest{JobID: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job not found")
}

func TestListRoleScoping(t *testing.T) {
	f := setupFixture(t)

	other := dbmodels.User{Email: "other@example.com", Password: "hash", FirstName: "Olga", LastName: "Other", Role: models.UserRoleCandidate}
	require.NoError(t, f.db.Create(&other).Error)

	_, err := f.handler.Apply(f.candidateID, applicationapimodels.ApplicationCreateRequest{JobID: f.jobID})
	require.NoError(t, err)
	_, err = f.handler.Apply(other.ID, applicationapimodels.ApplicationCreateRequest{JobID: f.jobID})
	require.NoError(t, err)

	adminList, err := f.handler.List("any-admin", models.UserRoleAdmin, applicationapimodels.ApplicationFind{})
	require.NoError(t, err)
	assert.Len(t, adminList, 2)

	candidateList, err := f.handler.List(f.candidateID, models.UserRoleCandidate, applicationapimodels.ApplicationFind{})
	require.NoError(t, err)
	require.Len(t, candidateList, 1)
	assert.Equal(t, f.candidateID, candidateList[0].CandidateID)

	interviewerList, err := f.handler.List("unassigned-interviewer", models.UserRoleInterviewer, applicationapimodels.ApplicationFind{})
	require.NoError(t, err)
	assert.Empty(t, interviewerList)

	_, err = f.handler.List("someone", models.UserRole("ghost"), applicationapimodels.ApplicationFind{})
	assert.Error(t, err)
}

func TestListByJob(t *testing.T) {
	f := setupFixture(t)

	otherJob := dbmodels.Job{Title: "Tech Lead", Department: "Engineering", Position: models.PositionTechLead, IsOpen: true}
	require.NoError(t, f.db.Create(&otherJob).Error)
	other := dbmodels.User{Email: "other@example.com", Password: "hash", FirstName: "Olga", LastName: "Other", Role: models.UserRoleCandidate}
	require.NoError(t, f.db.Create(&other).Error)

	_, err := f.handler.Apply(f.candidateID, applicationapimodels.ApplicationCreateRequest{JobID: f.jobID})
	require.NoError(t, err)
	_, err = f.handler.Apply(other.ID, applicationapimodels.ApplicationCreateRequest{JobID: f.jobID})
	require.NoError(t, err)
	_, err = f.handler.Apply(f.candidateID, applicationapimodels.ApplicationCreateRequest{JobID: otherJob.ID})
	require.NoError(t, err)

	list, err := f.handler.ListByJob(f.jobID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, item := range list {
		assert.Equal(t, f.jobID, item.JobID)
	}

	none, err := f.handler.ListByJob("missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSelectCandidateViaHandler(t *testing.T) {
	f := setupFixture(t)

	other := dbmodels.User{Email: "other@example.com", Password: "hash", FirstName: "Olga", LastName: "Other", Role: models.UserRoleCandidate}
	require.NoError(t, f.db.Create(&other).Error)

	winnerID, err := f.handler.Apply(f.candidateID, applicationapimodels.ApplicationCreateRequest{JobID: f.jobID})
	require.NoError(t, err)
	loserID, err := f.handler.Apply(other.ID, applicationapimodels.ApplicationCreateRequest{JobID: f.jobID})
	require.NoError(t, err)

	require.NoError(t, f.handler.SelectCandidate(winnerID))

	winner, err := f.handler.Get(winnerID)
	require.NoError(t, err)
	assert.True(t, winner.IsSelected)
	assert.Equal(t, models.ApplicationStatusClosed, winner.Status)

	loser, err := f.handler.Get(loserID)
	require.NoError(t, err)
	assert.False(t, loser.IsSelected)
	assert.Equal(t, models.ApplicationStatusClosed, loser.Status)
}
