package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/middleware"
	"employee-portal/internal/service/incident"
)

type IncidentHandler struct {
	incidentService incident.Service
}

func NewIncidentHandler(incidentService incident.Service) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService}
}

func (h *IncidentHandler) Create(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	var input domain.CreateIncidentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	inc, err := h.incidentService.Create(c.Context(), claims.EmployeeID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(inc)
}

func (h *IncidentHandler) List(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	params := getPaginationParams(c)

	var employeeID *uuid.UUID
	if claims.IsAdmin() {
		if e := c.Query("employee_id"); e != "" {
			parsed, err := uuid.Parse(e)
			if err != nil {
				return middleware.BadRequest("Invalid employee ID")
			}
			employeeID = &parsed
		}
	} else {
		id := claims.EmployeeID
		employeeID = &id
	}

	result, err := h.incidentService.List(c.Context(), employeeID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *IncidentHandler) Get(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	incidentID, err := uuid.Parse(c.Params("incidentId"))
	if err != nil {
		return middleware.BadRequest("Invalid incident ID")
	}

	inc, err := h.incidentService.GetByID(c.Context(), incidentID)
	if err != nil {
		return err
	}
	if !claims.IsAdmin() && inc.EmployeeID != claims.EmployeeID {
		return middleware.Forbidden("Insufficient permissions")
	}

	return c.Status(fiber.StatusOK).JSON(inc)
}

func (h *IncidentHandler) Update(c *fiber.Ctx) error {
	incidentID, err := uuid.Parse(c.Params("incidentId"))
	if err != nil {
		return middleware.BadRequest("Invalid incident ID")
	}

	var input domain.UpdateIncidentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	inc, err := h.incidentService.Update(c.Context(), incidentID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(inc)
}

func (h *IncidentHandler) Delete(c *fiber.Ctx) error {
	incidentID, err := uuid.Parse(c.Params("incidentId"))
	if err != nil {
		return middleware.BadRequest("Invalid incident ID")
	}

	if err := h.incidentService.Delete(c.Context(), incidentID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Incident deleted"})
}
