package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Resume) (id string, err error)
	GetByApplication(applicationID string) (rec *dbmodels.Resume, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Resume) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByApplication(applicationID string) (*dbmodels.Resume, error) {
	rec := dbmodels.Resume{}
	err := i.db.
		Where("application_id = ?", applicationID).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.Resume{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	tx := i.db.
		Delete(&rec)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
