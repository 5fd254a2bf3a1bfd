package service

import (
	"employee-portal/internal/config"
	"employee-portal/internal/realtime"
	"employee-portal/internal/repository"
	"employee-portal/internal/service/attendance"
	"employee-portal/internal/service/audit"
	"employee-portal/internal/service/document"
	"employee-portal/internal/service/email"
	"employee-portal/internal/service/incident"
	"employee-portal/internal/service/notification"
	"employee-portal/internal/service/request"
	"employee-portal/internal/service/schedule"
)

type Services struct {
	Request      request.Service
	Schedule     schedule.Service
	Attendance   attendance.Service
	Document     document.Service
	Incident     incident.Service
	Email        email.Service
	Notification notification.Service
	Audit        audit.Service
}

func NewServices(repos *repository.Repositories, broadcaster realtime.Broadcaster, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	notificationService := notification.NewService(repos.Notification, repos.Employee, emailService)
	notificationService.SetLocale(cfg.Locale)
	auditService := audit.NewService(repos.AuditLog)
	scheduleService := schedule.NewService(repos.Schedule, repos.Employee)
	attendanceService := attendance.NewService(repos.Attendance, repos.Schedule)
	documentService := document.NewService(repos.Document, repos.Employee, broadcaster)

	requestService := request.NewService(repos.Request, repos.Schedule, repos.Employee, repos.AuditLog, broadcaster)
	requestService.SetNotificationService(notificationService)

	incidentService := incident.NewService(repos.Incident, repos.Employee, broadcaster)
	incidentService.SetNotificationService(notificationService)

	return &Services{
		Request:      requestService,
		Schedule:     scheduleService,
		Attendance:   attendanceService,
		Document:     documentService,
		Incident:     incidentService,
		Email:        emailService,
		Notification: notificationService,
		Audit:        auditService,
	}
}
