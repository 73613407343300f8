package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	statisticsapimodels "ims-backend/models/api/statistics"
)

type Provider interface {
	ExportJobStatistics(list []statisticsapimodels.JobStatisticsView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var statisticsHeaders = []string{"Job", "Total", "New", "In Progress", "Closed", "Selected", "Average Rating"}

func (i impl) ExportJobStatistics(list []statisticsapimodels.JobStatisticsView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, statisticsHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		_, err = writeStatisticsData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Job Statistics")
	return f.WriteToBuffer()
}

func writeStatisticsData(f *excelize.File, sheet string, list []statisticsapimodels.JobStatisticsView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(statisticsHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Job"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
			return row, err
		}

		// "Total"
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalApplications); err != nil {
			return row, err
		}

		// "New"
		col++
		if err := writeColumn(f, sheet, col, row, item.NewApplications); err != nil {
			return row, err
		}

		// "In Progress"
		col++
		if err := writeColumn(f, sheet, col, row, item.InProgressApplications); err != nil {
			return row, err
		}

		// "Closed"
		col++
		if err := writeColumn(f, sheet, col, row, item.ClosedApplications); err != nil {
			return row, err
		}

		// "Selected"
		col++
		if err := writeColumn(f, sheet, col, row, item.SelectedApplications); err != nil {
			return row, err
		}

		// "Average Rating"
		col++
		if err := writeColumn(f, sheet, col, row, item.AverageRating); err != nil {
			return row, err
		}
	}
	return row, nil
}
