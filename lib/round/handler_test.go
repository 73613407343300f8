package round

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	accountstore "ims-backend/lib/account/store"
	applicationstore "ims-backend/lib/application/store"
	"ims-backend/lib/round/store"
	"ims-backend/models"
	roundapimodels "ims-backend/models/api/round"
	dbmodels "ims-backend/models/db"
)

type fixture struct {
	db            *gorm.DB
	handler       impl
	applicationID string
	templateID    string
	interviewerID string
	candidateID   string
	now           time.Time
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
		&dbmodels.Feedback{},
	)
	require.NoError(t, err, "failed to migrate test database")

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	handler := impl{
		store:            store.NewInstance(db),
		accountStore:     accountstore.NewInstance(db),
		applicationStore: applicationstore.NewInstance(db),
		now:              func() time.Time { return now },
	}

	candidate := dbmodels.User{Email: "candidate@example.com", Password: "hash", FirstName: "Cara", LastName: "Candidate", Role: models.UserRoleCandidate}
	require.NoError(t, db.Create(&candidate).Error)
	interviewer := dbmodels.User{Email: "interviewer@example.com", Password: "hash", FirstName: "Ivy", LastName: "Interviewer", Role: models.UserRoleInterviewer}
	require.NoError(t, db.Create(&interviewer).Error)
	job := dbmodels.Job{Title: "Backend Engineer", Department: "Engineering", Position: models.PositionSoftwareEngineer, IsOpen: true}
	require.NoError(t, db.Create(&job).Error)
	application := dbmodels.JobApplication{JobID: job.ID, CandidateID: candidate.ID, AppliedOn: now, Status: models.ApplicationStatusNew}
	require.NoError(t, db.Create(&application).Error)
	template := dbmodels.InterviewRound{RoundType: models.RoundTypeCoding}
	require.NoError(t, db.Create(&template).Error)

	return fixture{
		db:            db,
		handler:       handler,
		applicationID: application.ID,
		templateID:    template.ID,
		interviewerID: interviewer.ID,
		candidateID:   candidate.ID,
		now:           now,
	}
}

func (f fixture) scheduleRequest() roundapimodels.ScheduleRoundRequest {
	return roundapimodels.ScheduleRoundRequest{
		RoundID:       f.templateID,
		InterviewerID: f.interviewerID,
		ScheduledTime: f.now.Add(2 * time.Hour),
		Duration:      60,
	}
}

func TestSchedule(t *testing.T) {
	f := setupFixture(t)

	id, err := f.handler.Schedule(f.scheduleRequest(), f.applicationID)
	require.NoError(t, err)

	view, err := f.handler.Get(id)
	require.NoError(t, err)
	assert.Equal(t, f.applicationID, view.ApplicationID)
	assert.Equal(t, f.interviewerID, view.InterviewerID)
	assert.Equal(t, 60, view.Duration)
	require.NotNil(t, view.RoundDetails)
	assert.Equal(t, models.RoundTypeCoding, view.RoundDetails.RoundType)
}

func TestScheduleRejectsPastTime(t *testing.T) {
	f := setupFixture(t)

	request := f.scheduleRequest()
	request.ScheduledTime = f.now.Add(-time.Minute)
	_, err := f.handler.Schedule(request, f.applicationID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduled time cannot be in the past")
}

func TestScheduleRejectsNonInterviewer(t *testing.T) {
	f := setupFixture(t)

	request := f.scheduleRequest()
	request.InterviewerID = f.candidateID
	_, err := f.handler.Schedule(request, f.applicationID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an interviewer")
}

func TestScheduleRejectsUnknownApplication(t *testing.T) {
	f := setupFixture(t)

	_, err := f.handler.Schedule(f.scheduleRequest(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application not found")
}

func TestScheduleRejectsUnknownTemplate(t *testing.T) {
	f := setupFixture(t)

	request := f.scheduleRequest()
	request.RoundID = "missing"
	_, err := f.handler.Schedule(request, f.applicationID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "round template not found")
}

func TestUpdateRejectsPastTime(t *testing.T) {
	f := setupFixture(t)

	id, err := f.handler.Schedule(f.scheduleRequest(), f.applicationID)
	require.NoError(t, err)

	err = f.handler.Update(id, roundapimodels.ScheduleRoundUpdateRequest{
		ScheduledTime: f.now.Add(-time.Hour),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduled time cannot be in the past")
}

func TestListByInterviewer(t *testing.T) {
	f := setupFixture(t)

	_, err := f.handler.Schedule(f.scheduleRequest(), f.applicationID)
	require.NoError(t, err)

	list, err := f.handler.ListByInterviewer(f.interviewerID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	none, err := f.handler.ListByInterviewer("someone-else")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListUpcoming(t *testing.T) {
	f := setupFixture(t)

	_, err := f.handler.Schedule(f.scheduleRequest(), f.applicationID)
	require.NoError(t, err)

	// a round already in the past must not show up
	past := dbmodels.ApplicationRound{
		ApplicationID: f.applicationID,
		RoundID:       f.templateID,
		ScheduledTime: f.now.Add(-2 * time.Hour),
		InterviewerID: f.interviewerID,
		Duration:      60,
	}
	require.NoError(t, f.db.Create(&past).Error)

	all, err := f.handler.ListUpcoming("")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].ScheduledTime.After(f.now))

	own, err := f.handler.ListUpcoming(f.interviewerID)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	none, err := f.handler.ListUpcoming("someone-else")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTemplates(t *testing.T) {
	f := setupFixture(t)

	id, err := f.handler.CreateTemplate(roundapimodels.RoundTemplateData{RoundType: models.RoundTypeHR})
	require.NoError(t, err)

	list, err := f.handler.ListTemplates()
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = f.handler.CreateTemplate(roundapimodels.RoundTemplateData{RoundType: "unknown"})
	assert.Error(t, err)

	require.NoError(t, f.handler.DeleteTemplate(id))
	list, err = f.handler.ListTemplates()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
