package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"admissions-portal/internal/config"
	"admissions-portal/internal/domain"
)

// Service delivers applicant-facing emails through Resend. Delivery is
// best-effort with no retry: callers inspect the error but must not block
// a committed workflow transition on it.
type Service interface {
	SendDecisionEmail(ctx context.Context, toEmail, applicantName string, status domain.ApplicationStatus, reason string) error
	SendMissingDocumentEmail(ctx context.Context, toEmail, applicantName, missing string) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

var decisionTmpl = template.Must(template.New("decision").Parse(`
<h2>Hello {{.Name}},</h2>
{{if .Validated}}
<p>Congratulations! Your admission application has been <strong style="color:#10b981">validated</strong>.</p>
<p>You can consult the details of your enrollment on the portal.</p>
{{else}}
<p>We are sorry to inform you that your admission application has been <strong style="color:#ef4444">rejected</strong>.</p>
<p>Reason: {{.Reason}}</p>
{{end}}
<p><a href="http://{{.Domain}}/applications">Open the admissions portal</a></p>
`))

var missingDocumentTmpl = template.Must(template.New("missing_document").Parse(`
<h2>Hello {{.Name}},</h2>
<p>Your admission file is incomplete. An agent flagged the following:</p>
<p><em>{{.Missing}}</em></p>
<p>Please upload the missing document so your application can move forward.</p>
<p><a href="http://{{.Domain}}/applications">Open the admissions portal</a></p>
`))

func (s *service) SendDecisionEmail(ctx context.Context, toEmail, applicantName string, status domain.ApplicationStatus, reason string) error {
	subject := "Your application has been validated"
	if status == domain.StatusRejected {
		subject = "Your application has been rejected"
	}

	data := struct {
		Name      string
		Validated bool
		Reason    string
		Domain    string
	}{
		Name:      applicantName,
		Validated: status == domain.StatusValidated,
		Reason:    reason,
		Domain:    s.cfg.PortalDomain,
	}

	return s.send(toEmail, subject, decisionTmpl, data)
}

func (s *service) SendMissingDocumentEmail(ctx context.Context, toEmail, applicantName, missing string) error {
	data := struct {
		Name    string
		Missing string
		Domain  string
	}{
		Name:    applicantName,
		Missing: missing,
		Domain:  s.cfg.PortalDomain,
	}

	return s.send(toEmail, "Your admission file is incomplete", missingDocumentTmpl, data)
}

func (s *service) send(toEmail, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Admissions Portal <%s>", s.cfg.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
