package handler

import (
	"github.com/gofiber/fiber/v2"

	"employee-portal/internal/domain"
	"employee-portal/internal/service"
)

type Handlers struct {
	Request      *RequestHandler
	Schedule     *ScheduleHandler
	Attendance   *AttendanceHandler
	Document     *DocumentHandler
	Incident     *IncidentHandler
	Notification *NotificationHandler
	Audit        *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Request:      NewRequestHandler(services.Request),
		Schedule:     NewScheduleHandler(services.Schedule),
		Attendance:   NewAttendanceHandler(services.Attendance),
		Document:     NewDocumentHandler(services.Document),
		Incident:     NewIncidentHandler(services.Incident),
		Notification: NewNotificationHandler(services.Notification),
		Audit:        NewAuditHandler(services.Audit),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
