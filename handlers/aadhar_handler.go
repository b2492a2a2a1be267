package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Onboarding-System/models"
	util "Employee-Onboarding-System/pkg/utils"
	"Employee-Onboarding-System/repository"
)

type AadharHandler struct {
	*DocumentHandler[models.Aadhar]
	employeeRepo repository.EmployeeRepository
}

func NewAadharHandler(docHandler *DocumentHandler[models.Aadhar], employeeRepo repository.EmployeeRepository) *AadharHandler {
	return &AadharHandler{
		DocumentHandler: docHandler,
		employeeRepo:    employeeRepo,
	}
}

// CreateAadhar godoc
// @Summary Create Aadhar
// @Description Submits an Aadhar card for an employee. The record starts Pending with the card image stored under /uploads.
// @Tags Documents
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param employee_id formData string true "Owning employee ID"
// @Param aadhar_name formData string true "Name as printed on the card"
// @Param aadhar_no formData string true "Aadhaar number (12 digits)"
// @Param aadhar_card formData file true "Card image"
// @Success 201 {object} models.AadharResponse "Aadhar created and queued for approval"
// @Failure 400 {object} object{error=string,errors=array} "Invalid payload, unknown employee or missing card image"
// @Failure 500 {object} object{error=string} "Failed to create aadhar"
// @Router /createaadhar [post]
func (h *AadharHandler) Create(c *fiber.Ctx) error {
	var payload models.AadharCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	employeeID, err := primitive.ObjectIDFromHex(payload.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to verify employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employee does not exist"})
	}

	cardURL, err := saveUpload(c, "aadhar_card", "aadhar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if cardURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "aadhar_card image is required"})
	}

	newAadhar := &models.Aadhar{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		AadharName: payload.AadharName,
		AadharNo:   payload.AadharNo,
		AadharCard: cardURL,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if _, err := h.repo.Create(ctx, newAadhar); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create aadhar: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Aadhar created and queued for approval",
		"aadhar":  newAadhar,
	})
}

func (h *AadharHandler) EditPending(c *fiber.Ctx) error {
	aadharID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid aadhar ID format"})
	}

	var payload models.AadharUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	updateData := bson.M{}
	if payload.AadharName != "" {
		updateData["aadhar_name"] = payload.AadharName
	}
	if payload.AadharNo != "" {
		updateData["aadhar_no"] = payload.AadharNo
	}
	if cardURL, err := saveUpload(c, "aadhar_card", "aadhar"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	} else if cardURL != "" {
		updateData["aadhar_card"] = cardURL
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	aadhar, err := h.repo.UpdatePendingFields(ctx, aadharID, updateData)
	if err != nil {
		return transitionError(c, err, "aadhar")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Pending aadhar updated",
		"aadhar":  aadhar,
	})
}

// EditApproved clones the approved card with the requested changes into a new
// Pending record; the approved one stays as-is until the clone is approved.
func (h *AadharHandler) EditApproved(c *fiber.Ctx) error {
	aadharID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid aadhar ID format"})
	}

	var payload models.AadharUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	approved, err := h.repo.FindByIDAndStatus(ctx, aadharID, models.StatusApproved)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch aadhar"})
	}
	if approved == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "approved aadhar not found"})
	}

	resubmission := *approved
	resubmission.ID = primitive.NewObjectID()
	resubmission.Status = models.StatusPending
	resubmission.Reply = ""
	resubmission.CreatedAt = time.Now()
	resubmission.UpdatedAt = time.Now()

	if payload.AadharName != "" {
		resubmission.AadharName = payload.AadharName
	}
	if payload.AadharNo != "" {
		resubmission.AadharNo = payload.AadharNo
	}
	if cardURL, err := saveUpload(c, "aadhar_card", "aadhar"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	} else if cardURL != "" {
		resubmission.AadharCard = cardURL
	}

	if _, err := h.repo.Create(ctx, &resubmission); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to resubmit aadhar: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Aadhar changes submitted for re-approval",
		"aadhar":  resubmission,
	})
}
