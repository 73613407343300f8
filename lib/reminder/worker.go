package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ims-backend/db"
	"ims-backend/lib/notify"
	roundstore "ims-backend/lib/round/store"
	"ims-backend/lib/smtp"
	baseworker "ims-backend/lib/utils/base-worker"
	"ims-backend/lib/utils/helpers"
	dbmodels "ims-backend/models/db"
)

// Worker sends each interviewer one digest of their rounds scheduled in the
// next 24 hours. Interviewers with no upcoming rounds get nothing.
type Worker struct {
	baseworker.BaseImpl
	store roundstore.Provider
	now   func() time.Time
}

func StartWorker(ctx context.Context) {
	worker := Worker{
		BaseImpl: *baseworker.NewInstance("interview_reminder", 1*time.Minute, 24*time.Hour),
		store:    roundstore.NewInstance(db.DB),
		now:      time.Now,
	}
	go worker.Run(ctx, worker.doWork)
}

func (i Worker) doWork(_ context.Context) {
	logger := i.GetLogger()
	from := i.now()
	rounds, err := i.store.FindUpcoming(from, from.Add(24*time.Hour))
	if err != nil {
		logger.WithError(err).Error("failed to load upcoming rounds")
		return
	}
	if len(rounds) == 0 {
		logger.Info("no upcoming rounds, nothing to send")
		return
	}
	byInterviewer := groupByInterviewer(rounds)
	for _, group := range byInterviewer {
		interviewer := group[0].Interviewer
		if interviewer == nil {
			continue
		}
		subject := "Upcoming Interviews - Next 24 Hours"
		body := digestBody(interviewer.FirstName, group)
		to := interviewer.Email
		if notify.Instance != nil {
			notify.Instance.Enqueue("interview_reminder", func() error {
				return smtp.Instance.SendEmail(to, subject, body)
			})
			continue
		}
		if err := smtp.Instance.SendEmail(to, subject, body); err != nil {
			logger.
				WithField("recipient", to).
				WithError(err).
				Error("failed to send reminder digest")
		}
	}
	logger.
		WithField("interviewer_count", len(byInterviewer)).
		WithField("round_count", len(rounds)).
		Info("reminder digests dispatched")
}

func groupByInterviewer(rounds []dbmodels.ApplicationRound) map[string][]dbmodels.ApplicationRound {
	byInterviewer := map[string][]dbmodels.ApplicationRound{}
	for _, round := range rounds {
		byInterviewer[round.InterviewerID] = append(byInterviewer[round.InterviewerID], round)
	}
	return byInterviewer
}

func digestBody(interviewerName string, rounds []dbmodels.ApplicationRound) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hello %s,\r\n\r\n", interviewerName))
	sb.WriteString("You have the following interviews scheduled in the next 24 hours:\r\n\r\n")
	for _, round := range rounds {
		sb.WriteString(fmt.Sprintf("- %s", helpers.FormatEmailTime(round.ScheduledTime)))
		if round.Application != nil {
			if round.Application.Job != nil {
				sb.WriteString(fmt.Sprintf(", job: %s", round.Application.Job.Title))
			}
			if candidate := round.Application.Candidate; candidate != nil {
				sb.WriteString(fmt.Sprintf(", candidate: %s (%s, %s)",
					candidate.FullName(), candidate.Email, candidate.Phone))
			}
		}
		sb.WriteString("\r\n")
	}
	sb.WriteString("\r\nGood luck!\r\n")
	return sb.String()
}
