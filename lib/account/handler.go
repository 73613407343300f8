package account

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"ims-backend/db"
	"ims-backend/lib/account/store"
	authutils "ims-backend/lib/utils/auth-utils"
	"ims-backend/models"
	accountapimodels "ims-backend/models/api/account"
	authapimodels "ims-backend/models/api/auth"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	Register(request accountapimodels.RegisterRequest) (id string, err error)
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error)
	GetByID(userID string) (user accountapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
	}
}

type impl struct {
	store store.Provider
}

func (i impl) Register(request accountapimodels.RegisterRequest) (id string, err error) {
	logger := log.WithField("email", request.Email)
	exist, err := i.store.ExistByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check for existing user")
		return "", err
	}
	if exist {
		return "", errors.New("email already exists")
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		logger.WithError(err).Error("failed to hash password")
		return "", err
	}
	rec := dbmodels.User{
		Email:     request.Email,
		Password:  hash,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		Role:      request.Role,
		IsStaff:   request.Role == models.UserRoleAdmin,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		// the unique index backstops concurrent registrations
		if db.IsDuplicateErr(err) {
			return "", errors.New("email already exists")
		}
		logger.WithError(err).Error("failed to create user")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		WithField("role", request.Role).
		Info("user registered")
	return id, nil
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.GetByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to find user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no user with this email")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	if !authutils.CheckPassword(user.Password, password) {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	return i.issueTokens(*user)
}

func (i impl) RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, errors.New("user not found")
	}
	return i.issueTokens(*user)
}

func (i impl) GetByID(userID string) (user accountapimodels.UserView, err error) {
	userDB, err := i.store.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to find user")
		return accountapimodels.UserView{}, err
	}
	if userDB == nil {
		return accountapimodels.UserView{}, gorm.ErrRecordNotFound
	}
	return accountapimodels.UserConvert(*userDB), nil
}

func (i impl) issueTokens(user dbmodels.User) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", user.Email)
	name := fmt.Sprintf("%s %s", user.FirstName, user.LastName)
	accessToken, err := authutils.GetToken(user.ID, name, user.IsStaff, user.Role)
	if err != nil {
		logger.WithError(err).Error("failed to generate JWT")
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, name)
	if err != nil {
		logger.WithError(err).Error("failed to generate refresh JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
