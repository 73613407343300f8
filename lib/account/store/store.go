package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"ims-backend/models"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	GetByEmail(email string) (rec *dbmodels.User, err error)
	ExistByEmail(email string) (bool, error)
	EmailsByRole(role models.UserRole) (list []string, err error)
	ListByRole(role models.UserRole) (list []dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ExistByEmail(email string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.User{}).
		Where("email = ?", email).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount != 0, nil
}

func (i impl) EmailsByRole(role models.UserRole) (list []string, err error) {
	list = []string{}
	err = i.db.
		Model(dbmodels.User{}).
		Where("role = ?", role).
		Pluck("email", &list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRole(role models.UserRole) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	err = i.db.
		Where("role = ?", role).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
