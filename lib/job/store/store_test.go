package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"ims-backend/models"
	dbmodels "ims-backend/models/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	err = db.AutoMigrate(
		&dbmodels.User{},
		&dbmodels.Job{},
		&dbmodels.JobApplication{},
	)
	require.NoError(t, err, "failed to migrate test database")
	return db
}

func createJob(t *testing.T, provider Provider, title, department string, position models.JobPosition, open bool) string {
	id, err := provider.Create(dbmodels.Job{
		Title:       title,
		Description: "Build and run backend services",
		Department:  department,
		Position:    position,
		IsOpen:      open,
	})
	require.NoError(t, err)
	return id
}

func TestCreateRejectsUnknownPosition(t *testing.T) {
	provider := NewInstance(setupTestDB(t))

	_, err := provider.Create(dbmodels.Job{
		Title:      "Backend Engineer",
		Department: "Engineering",
		Position:   "astronaut",
	})
	assert.Error(t, err)
}

func TestFindFilters(t *testing.T) {
	provider := NewInstance(setupTestDB(t))
	createJob(t, provider, "Backend Engineer", "Engineering", models.PositionSoftwareEngineer, true)
	createJob(t, provider, "Tech Lead", "Engineering", models.PositionTechLead, true)
	closedID := createJob(t, provider, "Intern", "Sales", models.PositionIntern, false)

	byDepartment, err := provider.Find(dbmodels.JobFilter{Department: "Engineering"})
	require.NoError(t, err)
	assert.Len(t, byDepartment, 2)

	byPosition, err := provider.Find(dbmodels.JobFilter{Position: models.PositionTechLead})
	require.NoError(t, err)
	require.Len(t, byPosition, 1)
	assert.Equal(t, "Tech Lead", byPosition[0].Title)

	closed := false
	byOpen, err := provider.Find(dbmodels.JobFilter{IsOpen: &closed})
	require.NoError(t, err)
	require.Len(t, byOpen, 1)
	assert.Equal(t, closedID, byOpen[0].ID)
}

func TestFindSearchIsCaseInsensitive(t *testing.T) {
	provider := NewInstance(setupTestDB(t))
	createJob(t, provider, "Backend Engineer", "Engineering", models.PositionSoftwareEngineer, true)
	createJob(t, provider, "Account Manager", "Sales", models.PositionManager, true)

	list, err := provider.Find(dbmodels.JobFilter{Search: "bAcKeNd"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Backend Engineer", list[0].Title)
}

func TestFindOpen(t *testing.T) {
	provider := NewInstance(setupTestDB(t))
	createJob(t, provider, "Backend Engineer", "Engineering", models.PositionSoftwareEngineer, true)
	createJob(t, provider, "Intern", "Sales", models.PositionIntern, false)

	list, err := provider.FindOpen()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsOpen)
}

func TestUpdateUnknownID(t *testing.T) {
	provider := NewInstance(setupTestDB(t))

	err := provider.Update("missing", map[string]interface{}{"title": "New"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApplicationCounts(t *testing.T) {
	db := setupTestDB(t)
	provider := NewInstance(db)
	busyID := createJob(t, provider, "Backend Engineer", "Engineering", models.PositionSoftwareEngineer, true)
	emptyID := createJob(t, provider, "Tech Lead", "Engineering", models.PositionTechLead, true)

	for _, email := range []string{"first@example.com", "second@example.com"} {
		candidate := dbmodels.User{Email: email, Password: "hash", FirstName: "Test", LastName: "Candidate", Role: models.UserRoleCandidate}
		require.NoError(t, db.Create(&candidate).Error)
		application := dbmodels.JobApplication{
			JobID:       busyID,
			CandidateID: candidate.ID,
			AppliedOn:   time.Now(),
			Status:      models.ApplicationStatusNew,
		}
		require.NoError(t, db.Create(&application).Error)
	}

	counts, err := provider.ApplicationCounts()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[busyID])
	assert.Zero(t, counts[emptyID])
}
