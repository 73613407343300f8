package models

type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleInterviewer UserRole = "interviewer"
	UserRoleCandidate   UserRole = "candidate"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleInterviewer, UserRoleCandidate:
		return true
	}
	return false
}

type JobPosition string

const (
	PositionSoftwareEngineer       JobPosition = "software_engineer"
	PositionSeniorSoftwareEngineer JobPosition = "senior_software_engineer"
	PositionTechLead               JobPosition = "tech_lead"
	PositionManager                JobPosition = "manager"
	PositionIntern                 JobPosition = "intern"
)

func (p JobPosition) IsValid() bool {
	switch p {
	case PositionSoftwareEngineer, PositionSeniorSoftwareEngineer,
		PositionTechLead, PositionManager, PositionIntern:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationStatusNew        ApplicationStatus = "new"
	ApplicationStatusInProgress ApplicationStatus = "inprogress"
	ApplicationStatusClosed     ApplicationStatus = "closed"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusInProgress, ApplicationStatusClosed:
		return true
	}
	return false
}

type RoundType string

const (
	RoundTypeAptitude  RoundType = "aptitude"
	RoundTypeTechnical RoundType = "technical"
	RoundTypeCoding    RoundType = "coding"
	RoundTypeHR        RoundType = "hr"
)

func (r RoundType) IsValid() bool {
	switch r {
	case RoundTypeAptitude, RoundTypeTechnical, RoundTypeCoding, RoundTypeHR:
		return true
	}
	return false
}

// ThrottleScope names a daily per-user request quota bucket.
type ThrottleScope string

const (
	ThrottleScopeFeedback       ThrottleScope = "interview_feedback"
	ThrottleScopeJobApplication ThrottleScope = "job_application"
)

const (
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)
