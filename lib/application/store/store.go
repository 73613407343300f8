package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"ims-backend/models"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobApplication) (id string, err error)
	GetByID(id string) (rec *dbmodels.JobApplication, err error)
	Find(filter dbmodels.ApplicationFilter) (list []dbmodels.JobApplication, err error)
	FindByCandidate(candidateID string, filter dbmodels.ApplicationFilter) (list []dbmodels.JobApplication, err error)
	FindByInterviewer(interviewerID string, filter dbmodels.ApplicationFilter) (list []dbmodels.JobApplication, err error)
	FindByJob(jobID string) (list []dbmodels.JobApplication, err error)
	ExistByJobAndCandidate(jobID, candidateID string) (bool, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	SelectCandidate(id string) error
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

// rowLock returns the SELECT ... FOR UPDATE clause on postgres; the sqlite
// test driver serializes writers on its own and rejects the syntax.
func (i impl) rowLock(tx *gorm.DB) *gorm.DB {
	if i.db.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (i impl) Create(rec dbmodels.JobApplication) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	if rec.Status == "" {
		rec.Status = models.ApplicationStatusNew
	}
	if rec.AppliedOn.IsZero() {
		rec.AppliedOn = time.Now()
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
	err := i.db.
		Preload("Job").
		Preload("Candidate").
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

func (i impl) applyFilter(tx *gorm.DB, filter dbmodels.ApplicationFilter) *gorm.DB {
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.IsSelected != nil {
		tx = tx.Where("is_selected = ?", *filter.IsSelected)
	}
	if filter.Sort.ByStatus {
		tx = tx.Order("status ASC")
	}
	if filter.Sort.AppliedOnDesc {
		tx = tx.Order("applied_on DESC")
	} else {
		tx = tx.Order("applied_on ASC")
	}
	return tx
}

func (i impl) Find(filter dbmodels.ApplicationFilter) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.db.
		Preload("Job").
		Preload("Candidate")
	err = i.applyFilter(tx, filter).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindByCandidate(candidateID string, filter dbmodels.ApplicationFilter) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.db.
		Preload("Job").
		Preload("Candidate").
		Where("candidate_id = ?", candidateID)
	err = i.applyFilter(tx, filter).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindByInterviewer lists only applications with at least one round
// assigned to the interviewer.
func (i impl) FindByInterviewer(interviewerID string, filter dbmodels.ApplicationFilter) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	subQuery := i.db.
		Model(dbmodels.ApplicationRound{}).
		Select("application_id").
		Where("interviewer_id = ?", interviewerID)
	tx := i.db.
		Preload("Job").
		Preload("Candidate").
		Where("id IN (?)", subQuery)
	err = i.applyFilter(tx, filter).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindByJob(jobID string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	err = i.db.
		Preload("Job").
		Preload("Candidate").
		Where("job_id = ?", jobID).
		Order("applied_on ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ExistByJobAndCandidate(jobID, candidateID string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.JobApplication{}).
		Where("job_id = ?", jobID).
		Where("candidate_id = ?", candidateID).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount != 0, nil
}

// UpdateStatus overwrites the status unconditionally: any status may follow
// any other when set directly by an admin.
func (i impl) UpdateStatus(id string, status models.ApplicationStatus) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.JobApplication{}
		err := i.rowLock(tx).
			Where("id = ?", id).
			First(&rec).
			Error
		if err != nil {
			return err
		}
		if rec.Status == status {
			return nil
		}
		return tx.
			Model(&dbmodels.JobApplication{}).
			Where("id = ?", id).
			Update("status", status).
			Error
	})
}

// SelectCandidate marks one application as selected and closed, and closes
// every other non-closed application on the same job. The whole multi-row
// transition runs in one transaction so two concurrent selections cannot
// both win.
func (i impl) SelectCandidate(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.JobApplication{}
		err := i.rowLock(tx).
			Where("id = ?", id).
			First(&rec).
			Error
		if err != nil {
			return err
		}
		err = tx.
			Model(&dbmodels.JobApplication{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"is_selected": true,
				"status":      models.ApplicationStatusClosed,
			}).
			Error
		if err != nil {
			return err
		}
		return tx.
			Model(&dbmodels.JobApplication{}).
			Where("job_id = ?", rec.JobID).
			Where("id <> ?", id).
			Where("status <> ?", models.ApplicationStatusClosed).
			Update("status", models.ApplicationStatusClosed).
			Error
	})
}

func (i impl) Delete(id string) error {
	rec := dbmodels.JobApplication{
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
