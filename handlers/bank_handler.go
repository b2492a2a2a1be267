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

type BankDetailHandler struct {
	*DocumentHandler[models.BankDetail]
	employeeRepo repository.EmployeeRepository
}

func NewBankDetailHandler(docHandler *DocumentHandler[models.BankDetail], employeeRepo repository.EmployeeRepository) *BankDetailHandler {
	return &BankDetailHandler{
		DocumentHandler: docHandler,
		employeeRepo:    employeeRepo,
	}
}

func (h *BankDetailHandler) Create(c *fiber.Ctx) error {
	var payload models.BankDetailCreatePayload
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

	passbookURL, err := saveUpload(c, "passbook_image", "bank")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if passbookURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "passbook_image is required"})
	}

	newBankDetail := &models.BankDetail{
		ID:            primitive.NewObjectID(),
		EmployeeID:    employeeID,
		HolderName:    payload.HolderName,
		AccountNo:     payload.AccountNo,
		IFSCCode:      payload.IFSCCode,
		BankName:      payload.BankName,
		PassbookImage: passbookURL,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if _, err := h.repo.Create(ctx, newBankDetail); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create bank detail: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Bank detail created and queued for approval",
		"bankDetail": newBankDetail,
	})
}

func (h *BankDetailHandler) EditPending(c *fiber.Ctx) error {
	bankID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid bank detail ID format"})
	}

	var payload models.BankDetailUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	updateData := bson.M{}
	if payload.HolderName != "" {
		updateData["holder_name"] = payload.HolderName
	}
	if payload.AccountNo != "" {
		updateData["account_no"] = payload.AccountNo
	}
	if payload.IFSCCode != "" {
		updateData["ifsc_code"] = payload.IFSCCode
	}
	if payload.BankName != "" {
		updateData["bank_name"] = payload.BankName
	}
	if passbookURL, err := saveUpload(c, "passbook_image", "bank"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	} else if passbookURL != "" {
		updateData["passbook_image"] = passbookURL
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	bankDetail, err := h.repo.UpdatePendingFields(ctx, bankID, updateData)
	if err != nil {
		return transitionError(c, err, "bank detail")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Pending bank detail updated",
		"bankDetail": bankDetail,
	})
}

func (h *BankDetailHandler) EditApproved(c *fiber.Ctx) error {
	bankID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid bank detail ID format"})
	}

	var payload models.BankDetailUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	approved, err := h.repo.FindByIDAndStatus(ctx, bankID, models.StatusApproved)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch bank detail"})
	}
	if approved == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "approved bank detail not found"})
	}

	resubmission := *approved
	resubmission.ID = primitive.NewObjectID()
	resubmission.Status = models.StatusPending
	resubmission.Reply = ""
	resubmission.CreatedAt = time.Now()
	resubmission.UpdatedAt = time.Now()

	if payload.HolderName != "" {
		resubmission.HolderName = payload.HolderName
	}
	if payload.AccountNo != "" {
		resubmission.AccountNo = payload.AccountNo
	}
	if payload.IFSCCode != "" {
		resubmission.IFSCCode = payload.IFSCCode
	}
	if payload.BankName != "" {
		resubmission.BankName = payload.BankName
	}
	if passbookURL, err := saveUpload(c, "passbook_image", "bank"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	} else if passbookURL != "" {
		resubmission.PassbookImage = passbookURL
	}

	if _, err := h.repo.Create(ctx, &resubmission); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to resubmit bank detail: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Bank detail changes submitted for re-approval",
		"bankDetail": resubmission,
	})
}
