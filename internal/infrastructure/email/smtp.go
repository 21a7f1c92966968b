package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendQueryAnsweredEmail notifies a customer that an administrator responded
// to their query.
func (s *SMTPEmailService) SendQueryAnsweredEmail(to, displayName, queryNumber, responseText string) error {
	queriesURL := fmt.Sprintf("%s/queries", s.config.BaseURL)

	subject := fmt.Sprintf("Your support query %s has been answered", queryNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>Our support team has responded to your query <strong>%s</strong>:</p>
			<blockquote>%s</blockquote>
			<p>You can view the full conversation here:</p>
			<p><a href="%s">View My Queries</a></p>
			<p>If you have further questions, just reply through the portal.</p>
		</body>
		</html>
	`, displayName, queryNumber, responseText, queriesURL)

	plainBody := fmt.Sprintf(`
Hi %s,

Our support team has responded to your query %s:

%s

View the full conversation at:
%s

If you have further questions, just reply through the portal.
	`, displayName, queryNumber, responseText, queriesURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// NoopEmailService is used when outbound email is disabled in configuration.
type NoopEmailService struct{}

func NewNoopEmailService() *NoopEmailService {
	return &NoopEmailService{}
}

func (s *NoopEmailService) SendQueryAnsweredEmail(to, displayName, queryNumber, responseText string) error {
	return nil
}
