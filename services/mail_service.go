// file: services/mail_service.go
package services

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailService sends every platform email over SMTP. Sends are
// best-effort: a failed delivery is logged and swallowed so that no
// workflow ever fails or rolls back because of mail.
type MailService struct {
	dialer      *gomail.Dialer
	from        string
	appURL      string
	frontendURL string
	logger      *zap.Logger
}

func NewMailService(host string, port int, user, password, from, appURL, frontendURL string, logger *zap.Logger) *MailService {
	return &MailService{
		dialer:      gomail.NewDialer(host, port, user, password),
		from:        from,
		appURL:      appURL,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (m *MailService) send(to, subject, htmlBody string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Warn("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
	}
}

func (m *MailService) SendVerificationEmail(email, name, encryptedToken string) {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.frontendURL, encryptedToken)
	m.send(email, "Verify your Email address", fmt.Sprintf(
		`<p>Hi %s,</p><p>Please verify your email address by clicking <a href="%s">this link</a>.</p>`,
		name, link))
}

func (m *MailService) SendPasswordCreationEmail(email, name, encryptedToken string) {
	link := fmt.Sprintf("%s/create-password?token=%s", m.frontendURL, encryptedToken)
	m.send(email, "Create password", fmt.Sprintf(
		`<p>Hi %s,</p><p>An account was created for you. Set your password <a href="%s">here</a>.</p>`,
		name, link))
}

func (m *MailService) SendTeamInvitation(email, token string, expiresInHours int) {
	acceptLink := fmt.Sprintf("%s/team-invitations?token=%s&accept=true", m.appURL, token)
	rejectLink := fmt.Sprintf("%s/team-invitations?token=%s&accept=false", m.appURL, token)
	m.send(email, "Accept Team Invitation", fmt.Sprintf(
		`<p>You have been invited to join a team.</p>
<p><a href="%s">Accept</a> or <a href="%s">Decline</a>.</p>
<p>This invitation expires in %d hours.</p>`,
		acceptLink, rejectLink, expiresInHours))
}

func (m *MailService) SendApproval(email, challengeTitle string) {
	m.send(email, "Team Application Approved", fmt.Sprintf(
		`<p>Your team application for <strong>%s</strong> has been approved. Good luck!</p>`,
		challengeTitle))
}

func (m *MailService) SendRejection(email, challengeTitle, reason string) {
	m.send(email, "Team Application Canceled", fmt.Sprintf(
		`<p>Your team application for <strong>%s</strong> has been canceled.</p><p>Reason: %s</p>`,
		challengeTitle, reason))
}
