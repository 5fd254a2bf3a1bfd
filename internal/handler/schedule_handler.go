package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/middleware"
	"employee-portal/internal/service/schedule"
)

type ScheduleHandler struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateScheduleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	sched, err := h.scheduleService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(sched)
}

func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	employeeID := claims.EmployeeID
	if claims.IsAdmin() {
		if e := c.Query("employee_id"); e != "" {
			parsed, err := uuid.Parse(e)
			if err != nil {
				return middleware.BadRequest("Invalid employee ID")
			}
			employeeID = parsed
		}
	}

	now := time.Now()
	from := now.AddDate(0, -1, 0)
	to := now.AddDate(0, 1, 0)
	if f := c.Query("from"); f != "" {
		parsed, err := time.Parse("2006-01-02", f)
		if err != nil {
			return middleware.BadRequest("Invalid from date")
		}
		from = parsed
	}
	if t := c.Query("to"); t != "" {
		parsed, err := time.Parse("2006-01-02", t)
		if err != nil {
			return middleware.BadRequest("Invalid to date")
		}
		to = parsed
	}

	schedules, err := h.scheduleService.ListByEmployee(c.Context(), employeeID, from, to)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": schedules})
}

func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return middleware.BadRequest("Invalid schedule ID")
	}

	if err := h.scheduleService.Delete(c.Context(), scheduleID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Schedule deleted"})
}
