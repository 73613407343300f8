package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"ims-backend/config"
	"ims-backend/lib/account/store"
	"ims-backend/models"
	accountapimodels "ims-backend/models/api/account"
	dbmodels "ims-backend/models/db"
)

func setupHandler(t *testing.T) impl {
	if config.Conf == nil {
		conf := new(config.Configuration)
		conf.Auth.JWTSecret = "test-secret"
		conf.Auth.JWTExpireInSec = 3600
		conf.Auth.JWTRefreshExpireInSec = 86400
		config.Conf = conf
	}
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&dbmodels.User{}), "failed to migrate test database")
	return impl{
		store: store.NewInstance(db),
	}
}

func registerRequest(email string) accountapimodels.RegisterRequest {
	return accountapimodels.RegisterRequest{
		Email:     email,
		FirstName: "Cara",
		LastName:  "Candidate",
		Phone:     "+15550100",
		Role:      models.UserRoleCandidate,
		Password:  "secret123",
		Password2: "secret123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	handler := setupHandler(t)

	id, err := handler.Register(registerRequest("candidate@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	response, err := handler.Login("candidate@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)

	user, err := handler.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "candidate@example.com", user.Email)
	assert.Equal(t, models.UserRoleCandidate, user.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	handler := setupHandler(t)

	_, err := handler.Register(registerRequest("candidate@example.com"))
	require.NoError(t, err)

	_, err = handler.Register(registerRequest("candidate@example.com"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestRegisterStoresPasswordHashed(t *testing.T) {
	handler := setupHandler(t)

	id, err := handler.Register(registerRequest("candidate@example.com"))
	require.NoError(t, err)

	rec, err := handler.store.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.NotEqual(t, "secret123", rec.Password, "password must never be stored in clear")
}

func TestRegisterSetsStaffFlagForAdmins(t *testing.T) {
	handler := setupHandler(t)

	adminRequest := registerRequest("admin@example.com")
	adminRequest.Role = models.UserRoleAdmin
	adminID, err := handler.Register(adminRequest)
	require.NoError(t, err)

	admin, err := handler.store.GetByID(adminID)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsStaff)

	candidateID, err := handler.Register(registerRequest("candidate@example.com"))
	require.NoError(t, err)

	candidate, err := handler.store.GetByID(candidateID)
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.False(t, candidate.IsStaff)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	handler := setupHandler(t)

	_, err := handler.Register(registerRequest("candidate@example.com"))
	require.NoError(t, err)

	_, err = handler.Login("candidate@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")

	_, err = handler.Login("unknown@example.com", "secret123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password",
		"unknown email and wrong password must be indistinguishable")
}

func TestRefreshToken(t *testing.T) {
	handler := setupHandler(t)

	_, err := handler.Register(registerRequest("candidate@example.com"))
	require.NoError(t, err)
	response, err := handler.Login("candidate@example.com", "secret123")
	require.NoError(t, err)

	refreshed, err := handler.RefreshToken(response.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = handler.RefreshToken("not-a-token")
	assert.Error(t, err)
}
