package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	Find(filter dbmodels.JobFilter) (list []dbmodels.Job, err error)
	FindOpen() (list []dbmodels.Job, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ApplicationCounts() (counts map[string]int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
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

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
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

func (i impl) Find(filter dbmodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.Model(dbmodels.Job{})
	if filter.Department != "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.Position != "" {
		tx = tx.Where("position = ?", filter.Position)
	}
	if filter.IsOpen != nil {
		tx = tx.Where("is_open = ?", *filter.IsOpen)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where(
			"lower(title) LIKE ? OR lower(description) LIKE ? OR lower(department) LIKE ?",
			search, search, search,
		)
	}
	if filter.Sort.CreatedAtDesc {
		tx = tx.Order("created_at DESC")
	} else {
		tx = tx.Order("created_at ASC")
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindOpen() (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Where("is_open = ?", true).
		Order("created_at DESC").
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
		Model(&dbmodels.Job{}).
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
	rec := dbmodels.Job{
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

type jobCount struct {
	JobID    string
	RowCount int64
}

func (i impl) ApplicationCounts() (map[string]int64, error) {
	rows := []jobCount{}
	err := i.db.
		Model(dbmodels.JobApplication{}).
		Select("job_id, COUNT(id) AS row_count").
		Group("job_id").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.JobID] = row.RowCount
	}
	return counts, nil
}
