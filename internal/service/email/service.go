package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v3"

	"employee-portal/internal/config"
	"employee-portal/internal/domain"
)

type Service interface {
	SendRequestSubmittedEmail(ctx context.Context, toEmail, recipientName, requesterName string, req *domain.Request) error
	SendRequestDecisionEmail(ctx context.Context, toEmail, recipientName string, req *domain.Request) error
	SendIncidentReportedEmail(ctx context.Context, toEmail, recipientName, description string) error
}

type service struct {
	client       *resend.Client
	config       *config.Config
	templatePath string
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &service{
		client:       client,
		config:       cfg,
		templatePath: templatePath,
	}
}

func (s *service) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Employee Portal <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendRequestSubmittedEmail(ctx context.Context, toEmail, recipientName, requesterName string, req *domain.Request) error {
	data := struct {
		Title         string
		Name          string
		RequesterName string
		RequestType   string
	}{
		Title:         "New Request Awaiting Review",
		Name:          recipientName,
		RequesterName: requesterName,
		RequestType:   string(req.RequestType),
	}
	return s.sendEmail(toEmail, "New Request Awaiting Review - Employee Portal", "request_submitted.html", data)
}

func (s *service) SendRequestDecisionEmail(ctx context.Context, toEmail, recipientName string, req *domain.Request) error {
	remarks := ""
	if req.Remarks != nil {
		remarks = *req.Remarks
	}
	data := struct {
		Title       string
		Name        string
		RequestType string
		Status      string
		Remarks     string
	}{
		Title:       "Your Request Was Reviewed",
		Name:        recipientName,
		RequestType: string(req.RequestType),
		Status:      string(req.Status),
		Remarks:     remarks,
	}
	subject := fmt.Sprintf("Your %s request is now %s - Employee Portal", req.RequestType, req.Status)
	return s.sendEmail(toEmail, subject, "request_decision.html", data)
}

func (s *service) SendIncidentReportedEmail(ctx context.Context, toEmail, recipientName, description string) error {
	data := struct {
		Title       string
		Name        string
		Description string
	}{
		Title:       "Incident Report Filed",
		Name:        recipientName,
		Description: description,
	}
	return s.sendEmail(toEmail, "Incident Report Filed - Employee Portal", "incident_reported.html", data)
}
