package statistics

import (
	"bytes"

	"gorm.io/gorm"
	"ims-backend/db"
	xlsexport "ims-backend/lib/export/xls"
	"ims-backend/lib/statistics/store"
	statisticsapimodels "ims-backend/models/api/statistics"
)

type Provider interface {
	List() (list []statisticsapimodels.JobStatisticsView, err error)
	Get(jobID string) (item statisticsapimodels.JobStatisticsView, err error)
	Export() (buf *bytes.Buffer, err error)
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

func (i impl) List() (list []statisticsapimodels.JobStatisticsView, err error) {
	rows, err := i.store.JobStatistics("")
	if err != nil {
		return nil, err
	}
	return convertList(rows), nil
}

func (i impl) Get(jobID string) (item statisticsapimodels.JobStatisticsView, err error) {
	rows, err := i.store.JobStatistics(jobID)
	if err != nil {
		return statisticsapimodels.JobStatisticsView{}, err
	}
	if len(rows) == 0 {
		return statisticsapimodels.JobStatisticsView{}, gorm.ErrRecordNotFound
	}
	return convert(rows[0]), nil
}

func (i impl) Export() (*bytes.Buffer, error) {
	rows, err := i.store.JobStatistics("")
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportJobStatistics(convertList(rows))
}

func convert(row store.JobStatisticsRow) statisticsapimodels.JobStatisticsView {
	return statisticsapimodels.JobStatisticsView{
		JobID:                  row.JobID,
		JobTitle:               row.JobTitle,
		TotalApplications:      row.TotalApplications,
		NewApplications:        row.NewApplications,
		InProgressApplications: row.InProgressApplications,
		ClosedApplications:     row.ClosedApplications,
		SelectedApplications:   row.SelectedApplications,
		AverageRating:          row.AverageRating,
	}
}

func convertList(rows []store.JobStatisticsRow) []statisticsapimodels.JobStatisticsView {
	list := make([]statisticsapimodels.JobStatisticsView, 0, len(rows))
	for _, row := range rows {
		list = append(list, convert(row))
	}
	return list
}
