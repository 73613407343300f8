package dbmodels

import (
	"github.com/pkg/errors"
	"ims-backend/models"
)

// InterviewRound is a reusable round template, instantiated per
// application through ApplicationRound.
type InterviewRound struct {
	BaseModel
	RoundType models.RoundType `gorm:"type:varchar(15);default:aptitude"`
}

func (r InterviewRound) Validate() error {
	if !r.RoundType.IsValid() {
		return errors.New("unknown round type")
	}
	return nil
}
