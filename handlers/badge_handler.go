package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Onboarding-System/models"
	"Employee-Onboarding-System/repository"
)

type BadgeHandler struct {
	employeeRepo repository.EmployeeRepository
	baseURL      string
}

func NewBadgeHandler(employeeRepo repository.EmployeeRepository, baseURL string) *BadgeHandler {
	return &BadgeHandler{
		employeeRepo: employeeRepo,
		baseURL:      baseURL,
	}
}

// EmployeeBadge returns a QR badge for an approved employee. The QR encodes
// the public detail URL, so scanning a printed badge opens the verified
// profile. Only approved employees get a badge.
func (h *BadgeHandler) EmployeeBadge(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindByIDAndStatus(ctx, employeeID, models.StatusApproved)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "approved employee not found"})
	}

	detailURL := fmt.Sprintf("%s/fetchapprovemployeebyid/%s", h.baseURL, employee.ID.Hex())

	png, err := qrcode.Encode(detailURL, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate badge QR"})
	}

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Badge generated",
		"employee_id": employee.ID.Hex(),
		"name":        employee.Name,
		"badge_image": "data:image/png;base64," + encodedString,
	})
}
