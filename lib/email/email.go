package email

import (
	"bytes"
	"html/template"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// FeedbackEmailData is the fixed variable set of the feedback notification
// template.
type FeedbackEmailData struct {
	Subject         string
	RecipientName   string
	CandidateName   string
	JobTitle        string
	InterviewerName string
	FeedbackDate    string
	Rating          int
	Comments        string
	IsCandidate     bool
	IsAdmin         bool
	CompanyName     string
	CurrentYear     int
}

var feedbackTmpl = template.Must(template.New("feedback_notification").Parse(feedbackEmailTemplate))

// RenderFeedbackEmail fills the notification template; CompanyName and
// CurrentYear are set here when the caller leaves them empty.
func RenderFeedbackEmail(data FeedbackEmailData, companyName string) (string, error) {
	if data.CompanyName == "" {
		data.CompanyName = companyName
	}
	if data.CurrentYear == 0 {
		data.CurrentYear = time.Now().Year()
	}
	var buf bytes.Buffer
	if err := feedbackTmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "feedback template rendering failed")
	}
	return buf.String(), nil
}

type Provider interface {
	SendFeedbackEmail(to string, data FeedbackEmailData) error
}

var Instance Provider

func NewHandler(host, port, user, password, from, companyName string) {
	Instance = &impl{
		host:        host,
		port:        port,
		user:        user,
		password:    password,
		from:        from,
		companyName: companyName,
	}
}

type impl struct {
	host        string
	port        string
	user        string
	password    string
	from        string
	companyName string
}

func (i impl) isConfigured() bool {
	return i.host != "" && i.port != ""
}

func (i impl) SendFeedbackEmail(to string, data FeedbackEmailData) error {
	logger := log.WithField("recipient", to)
	html, err := RenderFeedbackEmail(data, i.companyName)
	if err != nil {
		return err
	}
	if !i.isConfigured() {
		logger.Warn("feedback email not sent, smtp client is not configured")
		return nil
	}
	port, err := strconv.Atoi(i.port)
	if err != nil {
		return errors.Wrap(err, "invalid smtp port")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", i.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", data.Subject)
	msg.SetBody("text/html", html)

	dialer := gomail.NewDialer(i.host, port, i.user, i.password)
	if err := dialer.DialAndSend(msg); err != nil {
		logger.WithError(err).Error("failed to send feedback email")
		return err
	}
	logger.Info("feedback email sent")
	return nil
}
