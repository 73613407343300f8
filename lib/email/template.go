package email

// One template serves both audiences: candidates never see the numeric
// rating, admins get rating and comments in full.
const feedbackEmailTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Subject}}</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333333; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 0 auto; padding: 24px;">
    <h2 style="color: #2c3e50;">{{.CompanyName}}</h2>
    <p>Hello {{.RecipientName}},</p>
    {{if .IsCandidate}}
    <p>New feedback has been recorded for your <strong>{{.JobTitle}}</strong> application.</p>
    <p>Interviewer: {{.InterviewerName}}<br>
       Date: {{.FeedbackDate}}</p>
    <p>Our team will contact you about the next steps.</p>
    {{end}}
    {{if .IsAdmin}}
    <p><strong>{{.InterviewerName}}</strong> submitted feedback for
       <strong>{{.CandidateName}}</strong> ({{.JobTitle}}).</p>
    <p>Date: {{.FeedbackDate}}<br>
       Rating: {{.Rating}} / 5</p>
    <blockquote style="border-left: 3px solid #cccccc; margin: 8px 0; padding-left: 12px;">{{.Comments}}</blockquote>
    {{end}}
    <p style="color: #888888; font-size: 12px; margin-top: 32px;">
      &copy; {{.CurrentYear}} {{.CompanyName}}
    </p>
  </div>
</body>
</html>`
