package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"employee-portal/internal/middleware"
	"employee-portal/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	unreadOnly := c.Query("unread_only") == "true"
	params := getPaginationParams(c)

	result, err := h.notifService.List(c.Context(), claims.EmployeeID, unreadOnly, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	count, err := h.notifService.CountUnread(c.Context(), claims.EmployeeID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notifService.MarkAsRead(c.Context(), notifID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		return middleware.Unauthorized("Employee not authenticated")
	}

	if err := h.notifService.MarkAllAsRead(c.Context(), claims.EmployeeID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
