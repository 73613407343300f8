package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	CreateTemplate(rec dbmodels.InterviewRound) (id string, err error)
	GetTemplateByID(id string) (rec *dbmodels.InterviewRound, err error)
	ListTemplates() (list []dbmodels.InterviewRound, err error)
	DeleteTemplate(id string) error

	Create(rec dbmodels.ApplicationRound) (id string, err error)
	GetByID(id string) (rec *dbmodels.ApplicationRound, err error)
	FindByApplication(applicationID string) (list []dbmodels.ApplicationRound, err error)
	FindByInterviewer(interviewerID string) (list []dbmodels.ApplicationRound, err error)
	FindUpcoming(from, to time.Time) (list []dbmodels.ApplicationRound, err error)
	FindFuture(after time.Time, interviewerID string) (list []dbmodels.ApplicationRound, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	CountByApplication(applicationID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateTemplate(rec dbmodels.InterviewRound) (id string, err error) {
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

func (i impl) GetTemplateByID(id string) (*dbmodels.InterviewRound, error) {
	rec := dbmodels.InterviewRound{}
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

func (i impl) ListTemplates() (list []dbmodels.InterviewRound, err error) {
	list = []dbmodels.InterviewRound{}
	err = i.db.
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteTemplate(id string) error {
	rec := dbmodels.InterviewRound{
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

func (i impl) Create(rec dbmodels.ApplicationRound) (id string, err error) {
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

func (i impl) GetByID(id string) (*dbmodels.ApplicationRound, error) {
	rec := dbmodels.ApplicationRound{}
	err := i.db.
		Preload("Round").
		Preload("Interviewer").
		Preload("Application").
		Preload("Application.Job").
		Preload("Application.Candidate").
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

func (i impl) FindByApplication(applicationID string) (list []dbmodels.ApplicationRound, err error) {
	list = []dbmodels.ApplicationRound{}
	err = i.db.
		Preload("Round").
		Preload("Interviewer").
		Where("application_id = ?", applicationID).
		Order("scheduled_time ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindByInterviewer(interviewerID string) (list []dbmodels.ApplicationRound, err error) {
	list = []dbmodels.ApplicationRound{}
	err = i.db.
		Preload("Round").
		Preload("Application").
		Preload("Application.Job").
		Preload("Application.Candidate").
		Where("interviewer_id = ?", interviewerID).
		Order("scheduled_time ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindUpcoming returns rounds scheduled inside [from, to), with everything
// the reminder digest needs preloaded.
func (i impl) FindUpcoming(from, to time.Time) (list []dbmodels.ApplicationRound, err error) {
	list = []dbmodels.ApplicationRound{}
	err = i.db.
		Preload("Round").
		Preload("Interviewer").
		Preload("Application").
		Preload("Application.Job").
		Preload("Application.Candidate").
		Where("scheduled_time >= ? AND scheduled_time < ?", from, to).
		Order("scheduled_time ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindFuture returns all rounds scheduled after the given moment, optionally
// narrowed to one interviewer.
func (i impl) FindFuture(after time.Time, interviewerID string) (list []dbmodels.ApplicationRound, err error) {
	list = []dbmodels.ApplicationRound{}
	query := i.db.
		Preload("Round").
		Preload("Interviewer").
		Preload("Application").
		Preload("Application.Job").
		Preload("Application.Candidate").
		Where("scheduled_time > ?", after)
	if interviewerID != "" {
		query = query.Where("interviewer_id = ?", interviewerID)
	}
	err = query.
		Order("scheduled_time ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ApplicationRound{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.ApplicationRound{
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

func (i impl) CountByApplication(applicationID string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.ApplicationRound{}).
		Where("application_id = ?", applicationID).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}
