package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "ims-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration of User failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "migration of Job failed")
	}
	if err := DB.AutoMigrate(&dbmodels.JobApplication{}); err != nil {
		return errors.Wrap(err, "migration of JobApplication failed")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewRound{}); err != nil {
		return errors.Wrap(err, "migration of InterviewRound failed")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationRound{}); err != nil {
		return errors.Wrap(err, "migration of ApplicationRound failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Feedback{}); err != nil {
		return errors.Wrap(err, "migration of Feedback failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Resume{}); err != nil {
		return errors.Wrap(err, "migration of Resume failed")
	}
	log.Info("migrations finished")
	return nil
}
