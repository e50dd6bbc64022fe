package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, fullName string) error
	SendCaseCreated(toEmail, caseName, caseID string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendWelcome(toEmail, fullName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to CaseFlow")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome, %s!</h2>
			<p>Your CaseFlow account is ready. You can start a new case from your dashboard.</p>
			<p><a href="%s/dashboard">Go to dashboard</a></p>
		</div>
	`, fullName, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send welcome to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Welcome sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendCaseCreated(toEmail, caseName, caseID string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your case has been created")

	caseLink := fmt.Sprintf("%s/cases/%s", s.clientURL, caseID)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Case created successfully</h2>
			<p>Your case <strong>%s</strong> has been created and is now pending review.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Case</a>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, caseName, caseLink, caseLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send case confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Case confirmation sent to %s\n", toEmail)
	return nil
}
