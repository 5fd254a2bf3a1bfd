package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/middleware"
	"employee-portal/internal/service/request"
)

type RequestHandler struct {
	requestService request.Service
}

func NewRequestHandler(requestService request.Service) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	var input domain.SubmitRequestInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	req, err := h.requestService.Submit(c.Context(), claims.EmployeeID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

// List returns the caller's own requests; admins may list everyone's and
// narrow by employee, status or type.
func (h *RequestHandler) List(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	params := getPaginationParams(c)

	var filter domain.RequestFilter
	if claims.IsAdmin() {
		if e := c.Query("employee_id"); e != "" {
			employeeID, err := uuid.Parse(e)
			if err != nil {
				return middleware.BadRequest("Invalid employee ID")
			}
			filter.EmployeeID = &employeeID
		}
	} else {
		employeeID := claims.EmployeeID
		filter.EmployeeID = &employeeID
	}
	if s := c.Query("status"); s != "" {
		status := domain.RequestStatus(s)
		filter.Status = &status
	}
	if t := c.Query("type"); t != "" {
		requestType := domain.RequestType(t)
		filter.Type = &requestType
	}

	result, err := h.requestService.List(c.Context(), filter, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *RequestHandler) Get(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return middleware.BadRequest("Invalid request ID")
	}

	req, err := h.requestService.GetByID(c.Context(), requestID)
	if err != nil {
		return err
	}
	if !claims.IsAdmin() && req.EmployeeID != claims.EmployeeID {
		return middleware.Forbidden("Insufficient permissions")
	}

	return c.Status(fiber.StatusOK).JSON(req)
}

// Review is the admin transition endpoint: approve, partial or reject,
// selected by the status field of the body.
func (h *RequestHandler) Review(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return middleware.BadRequest("Invalid request ID")
	}

	var input domain.ReviewRequestInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	meta := &request.RequestMeta{
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}

	var req *domain.Request
	switch input.Status {
	case domain.StatusApproved:
		req, err = h.requestService.Approve(c.Context(), requestID, claims.EmployeeID, input.Remarks, meta)
	case domain.StatusPartial:
		req, err = h.requestService.Partial(c.Context(), requestID, claims.EmployeeID, input, meta)
	case domain.StatusRejected:
		req, err = h.requestService.Reject(c.Context(), requestID, claims.EmployeeID, input.Remarks, meta)
	default:
		return middleware.BadRequest("Status must be approved, partial or rejected")
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(req)
}

// Respond lets the requesting employee accept or decline a partial approval.
func (h *RequestHandler) Respond(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return middleware.BadRequest("Invalid request ID")
	}

	var input domain.RespondInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	req, err := h.requestService.RespondToPartial(c.Context(), requestID, claims.EmployeeID, input.Action)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(req)
}

func (h *RequestHandler) Cancel(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return middleware.BadRequest("Invalid request ID")
	}

	req, err := h.requestService.Cancel(c.Context(), requestID, claims.EmployeeID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(req)
}
