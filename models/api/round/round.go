package roundapimodels

import (
	"time"

	"github.com/pkg/errors"
	"ims-backend/models"
	accountapimodels "ims-backend/models/api/account"
	applicationapimodels "ims-backend/models/api/application"
	dbmodels "ims-backend/models/db"
)

type RoundTemplateData struct {
	RoundType models.RoundType `json:"round_type"`
}

func (r RoundTemplateData) Validate() error {
	if !r.RoundType.IsValid() {
		return errors.New("unknown round type")
	}
	return nil
}

type RoundTemplateView struct {
	ID        string           `json:"id"`
	RoundType models.RoundType `json:"round_type"`
}

func RoundTemplateConvert(rec dbmodels.InterviewRound) RoundTemplateView {
	return RoundTemplateView{
		ID:        rec.ID,
		RoundType: rec.RoundType,
	}
}

type ScheduleRoundRequest struct {
	RoundID       string    `json:"round"`
	InterviewerID string    `json:"interviewer"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Duration      int       `json:"duration"`
}

func (r ScheduleRoundRequest) Validate() error {
	if r.RoundID == "" {
		return errors.New("round template is required")
	}
	if r.InterviewerID == "" {
		return errors.New("interviewer is required")
	}
	if r.ScheduledTime.IsZero() {
		return errors.New("scheduled time is required")
	}
	if r.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

type ScheduleRoundUpdateRequest struct {
	InterviewerID string    `json:"interviewer"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Duration      int       `json:"duration"`
}

type ApplicationRoundView struct {
	ID                 string                                 `json:"id"`
	ApplicationID      string                                 `json:"application"`
	ApplicationDetails *applicationapimodels.ApplicationView  `json:"application_details,omitempty"`
	RoundID            string                                 `json:"round"`
	RoundDetails       *RoundTemplateView                     `json:"round_details,omitempty"`
	ScheduledTime      time.Time                              `json:"scheduled_time"`
	InterviewerID      string                                 `json:"interviewer"`
	InterviewerDetails *accountapimodels.UserView             `json:"interviewer_details,omitempty"`
	Duration           int                                    `json:"duration"`
}

func ApplicationRoundConvert(rec dbmodels.ApplicationRound) ApplicationRoundView {
	view := ApplicationRoundView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		RoundID:       rec.RoundID,
		ScheduledTime: rec.ScheduledTime,
		InterviewerID: rec.InterviewerID,
		Duration:      rec.Duration,
	}
	if rec.Application != nil {
		appView := applicationapimodels.ApplicationConvert(*rec.Application)
		view.ApplicationDetails = &appView
	}
	if rec.Round != nil {
		roundView := RoundTemplateConvert(*rec.Round)
		view.RoundDetails = &roundView
	}
	if rec.Interviewer != nil {
		interviewerView := accountapimodels.UserConvert(*rec.Interviewer)
		view.InterviewerDetails = &interviewerView
	}
	return view
}
