package service

import (
	"fmt"
	"html"

	"github.com/go-resty/resty/v2"
	"github.com/yohanvishvajith/sintravels-sub000/internal/config"
)

type MailServiceInterface interface {
	SendContactMail(form ContactForm) error
}

// ContactForm is the public contact submission forwarded to the
// operator inbox.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Service string
	Message string
}

// MailService sends through a Resend-style HTTP email API.
type MailService struct {
	client *resty.Client
	cfg    *config.MailConfig
}

func NewMailService() *MailService {
	cfg := config.LoadMailConfig()
	return &MailService{
		client: resty.New().SetBaseURL("https://api.resend.com"),
		cfg:    cfg,
	}
}

func (s *MailService) SendContactMail(form ContactForm) error {
	if s.cfg.APIKey == "" {
		return fmt.Errorf("mail service not configured")
	}
	body := map[string]any{
		"from":     s.cfg.FromAddress,
		"to":       []string{s.cfg.OperatorTo},
		"reply_to": form.Email,
		"subject":  fmt.Sprintf("Website enquiry from %s", form.Name),
		"html":     renderContactHTML(form),
	}
	resp, err := s.client.R().
		SetAuthToken(s.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/emails")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("mail provider returned %s: %s", resp.Status(), resp.String())
	}
	return nil
}

func renderContactHTML(form ContactForm) string {
	row := func(label, value string) string {
		return fmt.Sprintf("<tr><td><strong>%s</strong></td><td>%s</td></tr>", label, html.EscapeString(value))
	}
	return "<h2>New website enquiry</h2><table>" +
		row("Name", form.Name) +
		row("Email", form.Email) +
		row("Phone", form.Phone) +
		row("Company", form.Company) +
		row("Service", form.Service) +
		row("Message", form.Message) +
		"</table>"
}
