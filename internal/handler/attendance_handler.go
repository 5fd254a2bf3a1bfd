package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"employee-portal/internal/middleware"
	"employee-portal/internal/service/attendance"
)

type AttendanceHandler struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	att, err := h.attendanceService.ClockIn(c.Context(), claims.EmployeeID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(att)
}

func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	att, err := h.attendanceService.ClockOut(c.Context(), claims.EmployeeID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(att)
}

func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	params := getPaginationParams(c)

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

	result, err := h.attendanceService.ListByEmployee(c.Context(), employeeID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
