package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"ims-backend/models"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	// CreateAndCheckCompletion inserts the feedback and, when every round of
	// the application now has feedback, closes the application. Both writes
	// and the counting queries run inside one transaction.
	CreateAndCheckCompletion(rec dbmodels.Feedback, applicationID string) (id string, closed bool, err error)
	GetByID(id string) (rec *dbmodels.Feedback, err error)
	Find(filter Filter) (list []dbmodels.Feedback, err error)
	ExistByApplicationRound(applicationRoundID string) (bool, error)
}

// Filter narrows feedback lookups; interviewer/candidate scoping goes
// through the join on application_rounds.
type Filter struct {
	ApplicationRoundID string
	ApplicationID      string
	CandidateID        string
	InterviewerID      string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) rowLock(tx *gorm.DB) *gorm.DB {
	if i.db.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (i impl) CreateAndCheckCompletion(rec dbmodels.Feedback, applicationID string) (id string, closed bool, err error) {
	err = rec.Validate()
	if err != nil {
		return "", false, err
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		application := dbmodels.JobApplication{}
		err := i.rowLock(tx).
			Where("id = ?", applicationID).
			First(&application).
			Error
		if err != nil {
			return err
		}
		err = tx.
			Create(&rec).
			Error
		if err != nil {
			return err
		}
		var roundCount int64
		err = tx.
			Model(dbmodels.ApplicationRound{}).
			Where("application_id = ?", applicationID).
			Count(&roundCount).
			Error
		if err != nil {
			return err
		}
		var feedbackCount int64
		err = tx.
			Model(dbmodels.Feedback{}).
			Where("application_round_id IN (?)", tx.
				Model(dbmodels.ApplicationRound{}).
				Select("id").
				Where("application_id = ?", applicationID),
			).
			Count(&feedbackCount).
			Error
		if err != nil {
			return err
		}
		if roundCount == 0 || feedbackCount < roundCount {
			return nil
		}
		closed = true
		if application.Status == models.ApplicationStatusClosed {
			return nil
		}
		return tx.
			Model(&dbmodels.JobApplication{}).
			Where("id = ?", applicationID).
			Update("status", models.ApplicationStatusClosed).
			Error
	})
	if err != nil {
		return "", false, err
	}
	return rec.ID, closed, nil
}

func (i impl) GetByID(id string) (*dbmodels.Feedback, error) {
	rec := dbmodels.Feedback{}
	err := i.db.
		Preload("ApplicationRound").
		Preload("ApplicationRound.Round").
		Preload("ApplicationRound.Interviewer").
		Preload("ApplicationRound.Application").
		Preload("ApplicationRound.Application.Job").
		Preload("ApplicationRound.Application.Candidate").
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

func (i impl) Find(filter Filter) (list []dbmodels.Feedback, err error) {
	list = []dbmodels.Feedback{}
	tx := i.db.
		Model(dbmodels.Feedback{}).
		Preload("ApplicationRound").
		Preload("ApplicationRound.Round").
		Preload("ApplicationRound.Interviewer").
		Preload("ApplicationRound.Application").
		Preload("ApplicationRound.Application.Job").
		Preload("ApplicationRound.Application.Candidate")
	if filter.ApplicationRoundID != "" {
		tx = tx.Where("application_round_id = ?", filter.ApplicationRoundID)
	}
	if filter.ApplicationID != "" {
		tx = tx.Where("application_round_id IN (?)", i.db.
			Model(dbmodels.ApplicationRound{}).
			Select("id").
			Where("application_id = ?", filter.ApplicationID),
		)
	}
	if filter.CandidateID != "" {
		appQuery := i.db.
			Model(dbmodels.JobApplication{}).
			Select("id").
			Where("candidate_id = ?", filter.CandidateID)
		tx = tx.Where("application_round_id IN (?)", i.db.
			Model(dbmodels.ApplicationRound{}).
			Select("id").
			Where("application_id IN (?)", appQuery),
		)
	}
	if filter.InterviewerID != "" {
		tx = tx.Where("application_round_id IN (?)", i.db.
			Model(dbmodels.ApplicationRound{}).
			Select("id").
			Where("interviewer_id = ?", filter.InterviewerID),
		)
	}
	err = tx.
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ExistByApplicationRound(applicationRoundID string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.Feedback{}).
		Where("application_round_id = ?", applicationRoundID).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount != 0, nil
}
