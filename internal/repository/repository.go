package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Request      RequestRepository
	Employee     EmployeeRepository
	Schedule     ScheduleRepository
	Document     DocumentRepository
	Incident     IncidentRepository
	Attendance   AttendanceRepository
	Notification NotificationRepository
	AuditLog     AuditLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Request:      NewRequestRepository(db),
		Employee:     NewEmployeeRepository(db),
		Schedule:     NewScheduleRepository(db),
		Document:     NewDocumentRepository(db),
		Incident:     NewIncidentRepository(db),
		Attendance:   NewAttendanceRepository(db),
		Notification: NewNotificationRepository(db),
		AuditLog:     NewAuditLogRepository(db),
	}
}
