package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/middleware"
	"employee-portal/internal/service/document"
)

type DocumentHandler struct {
	documentService document.Service
}

func NewDocumentHandler(documentService document.Service) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateDocumentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	doc, err := h.documentService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
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

	result, err := h.documentService.ListByEmployee(c.Context(), employeeID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	documentID, err := uuid.Parse(c.Params("documentId"))
	if err != nil {
		return middleware.BadRequest("Invalid document ID")
	}

	doc, err := h.documentService.GetByID(c.Context(), documentID)
	if err != nil {
		return err
	}
	if !claims.IsAdmin() && doc.EmployeeID != claims.EmployeeID {
		return middleware.Forbidden("Insufficient permissions")
	}

	return c.Status(fiber.StatusOK).JSON(doc)
}

func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("documentId"))
	if err != nil {
		return middleware.BadRequest("Invalid document ID")
	}

	var input domain.UpdateDocumentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	doc, err := h.documentService.Update(c.Context(), documentID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(doc)
}

func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("documentId"))
	if err != nil {
		return middleware.BadRequest("Invalid document ID")
	}

	if err := h.documentService.Delete(c.Context(), documentID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Document deleted"})
}
