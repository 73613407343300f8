package job

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"ims-backend/db"
	"ims-backend/lib/job/store"
	jobapimodels "ims-backend/models/api/job"
	dbmodels "ims-backend/models/db"
)

type Provider interface {
	Create(request jobapimodels.JobData) (id string, err error)
	Update(id string, request jobapimodels.JobData) error
	Get(id string) (item jobapimodels.JobView, err error)
	Delete(id string) error
	List(request jobapimodels.JobFind) (list []jobapimodels.JobView, err error)
	ListOpen() (list []jobapimodels.JobView, err error)
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

func (i impl) Create(request jobapimodels.JobData) (id string, err error) {
	rec := dbmodels.Job{
		Title:       request.Title,
		Description: request.Description,
		Department:  request.Department,
		Position:    request.Position,
		IsOpen:      true,
	}
	if request.IsOpen != nil {
		rec.IsOpen = *request.IsOpen
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("job_title", rec.Title).
		Info("job created")
	return id, nil
}

func (i impl) Update(id string, request jobapimodels.JobData) error {
	updMap := map[string]interface{}{
		"title":       request.Title,
		"description": request.Description,
		"department":  request.Department,
		"position":    request.Position,
	}
	if request.IsOpen != nil {
		updMap["is_open"] = *request.IsOpen
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("job updated")
	return nil
}

func (i impl) Get(id string) (item jobapimodels.JobView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, gorm.ErrRecordNotFound
	}
	counts, err := i.store.ApplicationCounts()
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	return jobapimodels.JobConvert(*rec, counts[rec.ID]), nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("job deleted")
	return nil
}

func (i impl) List(request jobapimodels.JobFind) (list []jobapimodels.JobView, err error) {
	recList, err := i.store.Find(request.ToFilter())
	if err != nil {
		return nil, err
	}
	return i.convertList(recList)
}

func (i impl) ListOpen() (list []jobapimodels.JobView, err error) {
	recList, err := i.store.FindOpen()
	if err != nil {
		return nil, err
	}
	return i.convertList(recList)
}

func (i impl) convertList(recList []dbmodels.Job) ([]jobapimodels.JobView, error) {
	counts, err := i.store.ApplicationCounts()
	if err != nil {
		return nil, err
	}
	list := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobapimodels.JobConvert(rec, counts[rec.ID]))
	}
	return list, nil
}
