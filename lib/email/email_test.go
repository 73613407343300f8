package email

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCandidateEmailHidesRating(t *testing.T) {
	html, err := RenderFeedbackEmail(FeedbackEmailData{
		Subject:         "Interview Feedback Received - Backend Engineer",
		RecipientName:   "Cara Candidate",
		CandidateName:   "Cara Candidate",
		JobTitle:        "Backend Engineer",
		InterviewerName: "Ivy Interviewer",
		FeedbackDate:    "2026-09-01 10:00",
		Rating:          2,
		Comments:        "needs improvement",
		IsCandidate:     true,
	}, "Acme")
	require.NoError(t, err)

	assert.Contains(t, html, "Hello Cara Candidate")
	assert.Contains(t, html, "Backend Engineer")
	assert.Contains(t, html, "Ivy Interviewer")
	assert.NotContains(t, html, "Rating:", "candidates must not see the numeric rating")
	assert.NotContains(t, html, "needs improvement", "candidates must not see the comments")
}

func TestRenderAdminEmailShowsRatingAndComments(t *testing.T) {
	html, err := RenderFeedbackEmail(FeedbackEmailData{
		Subject:         "New Interview Feedback - Cara Candidate - Backend Engineer",
		RecipientName:   "Admin",
		CandidateName:   "Cara Candidate",
		JobTitle:        "Backend Engineer",
		InterviewerName: "Ivy Interviewer",
		FeedbackDate:    "2026-09-01 10:00",
		Rating:          4,
		Comments:        "strong system design",
		IsAdmin:         true,
	}, "Acme")
	require.NoError(t, err)

	assert.Contains(t, html, "Rating: 4 / 5")
	assert.Contains(t, html, "strong system design")
	assert.Contains(t, html, "Cara Candidate")
}

func TestRenderFillsCompanyAndYearDefaults(t *testing.T) {
	html, err := RenderFeedbackEmail(FeedbackEmailData{
		Subject:       "subject",
		RecipientName: "Someone",
		IsCandidate:   true,
	}, "Acme")
	require.NoError(t, err)

	assert.Contains(t, html, "Acme")
	assert.Contains(t, html, strconv.Itoa(time.Now().Year()))
}

func TestRenderEscapesHTMLInComments(t *testing.T) {
	html, err := RenderFeedbackEmail(FeedbackEmailData{
		Subject:       "subject",
		RecipientName: "Admin",
		Comments:      `<script>alert("x")</script>`,
		IsAdmin:       true,
	}, "Acme")
	require.NoError(t, err)

	assert.False(t, strings.Contains(html, "<script>"), "comments must be escaped")
}
