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

type PanHandler struct {
	*DocumentHandler[models.Pan]
	employeeRepo repository.EmployeeRepository
}

func NewPanHandler(docHandler *DocumentHandler[models.Pan], employeeRepo repository.EmployeeRepository) *PanHandler {
	return &PanHandler{
		DocumentHandler: docHandler,
		employeeRepo:    employeeRepo,
	}
}

func (h *PanHandler) Create(c *fiber.Ctx) error {
	var payload models.PanCreatePayload
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

	cardURL, err := saveUpload(c, "pan_card", "pan")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if cardURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pan_card image is required"})
	}

	newPan := &models.Pan{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		PanName:    payload.PanName,
		PanNo:      payload.PanNo,
		PanCard:    cardURL,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if _, err := h.repo.Create(ctx, newPan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create pan: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "PAN created and queued for approval",
		"pan":     newPan,
	})
}

func (h *PanHandler) EditPending(c *fiber.Ctx) error {
	panID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pan ID format"})
	}

	var payload models.PanUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	updateData := bson.M{}
	if payload.PanName != "" {
		updateData["pan_name"] = payload.PanName
	}
	if payload.PanNo != "" {
		updateData["pan_no"] = payload.PanNo
	}
	if cardURL, err := saveUpload(c, "pan_card", "pan"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	} else if cardURL != "" {
		updateData["pan_card"] = cardURL
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	pan, err := h.repo.UpdatePendingFields(ctx, panID, updateData)
	if err != nil {
		return transitionError(c, err, "pan")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Pending PAN updated",
		"pan":     pan,
	})
}

func (h *PanHandler) EditApproved(c *fiber.Ctx) error {
	panID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pan ID format"})
	}

	var payload models.PanUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	approved, err := h.repo.FindByIDAndStatus(ctx, panID, models.StatusApproved)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch pan"})
	}
	if approved == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "approved pan not found"})
	}

	resubmission := *approved
	resubmission.ID = primitive.NewObjectID()
	resubmission.Status = models.StatusPending
	resubmission.Reply = ""
	resubmission.CreatedAt = time.Now()
	resubmission.UpdatedAt = time.Now()

	if payload.PanName != "" {
		resubmission.PanName = payload.PanName
	}
	if payload.PanNo != "" {
		resubmission.PanNo = payload.PanNo
	}
	if cardURL, err := saveUpload(c, "pan_card", "pan"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	} else if cardURL != "" {
		resubmission.PanCard = cardURL
	}

	if _, err := h.repo.Create(ctx, &resubmission); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to resubmit pan: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "PAN changes submitted for re-approval",
		"pan":     resubmission,
	})
}
