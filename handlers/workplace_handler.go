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

type WorkplaceHandler struct {
	workplaceRepo repository.WorkplaceRepository
}

func NewWorkplaceHandler(workplaceRepo repository.WorkplaceRepository) *WorkplaceHandler {
	return &WorkplaceHandler{workplaceRepo: workplaceRepo}
}

func (h *WorkplaceHandler) CreateWorkplace(c *fiber.Ctx) error {
	var payload models.WorkplacePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if existing, err := h.workplaceRepo.FindWorkplaceByName(ctx, payload.Name); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "workplace name already exists"})
	}

	workplace := &models.Workplace{
		Name:    payload.Name,
		Address: payload.Address,
	}

	result, err := h.workplaceRepo.CreateWorkplace(ctx, workplace)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create workplace: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Workplace created",
		"workplace_id": result.InsertedID,
	})
}

func (h *WorkplaceHandler) GetAllWorkplaces(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	workplaces, err := h.workplaceRepo.GetAllWorkplaces(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch workplaces"})
	}

	if workplaces == nil {
		workplaces = []models.Workplace{}
	}
	return c.Status(fiber.StatusOK).JSON(workplaces)
}

func (h *WorkplaceHandler) GetWorkplaceByID(c *fiber.Ctx) error {
	workplaceID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid workplace ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	workplace, err := h.workplaceRepo.GetWorkplaceByID(ctx, workplaceID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "workplace not found"})
	}
	return c.Status(fiber.StatusOK).JSON(workplace)
}

func (h *WorkplaceHandler) UpdateWorkplace(c *fiber.Ctx) error {
	workplaceID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid workplace ID format"})
	}

	var payload models.WorkplacePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	updateData := bson.M{
		"name":    payload.Name,
		"address": payload.Address,
	}

	result, err := h.workplaceRepo.UpdateWorkplace(ctx, workplaceID, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update workplace"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "workplace not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Workplace updated",
		"workplace_id": workplaceID.Hex(),
	})
}

func (h *WorkplaceHandler) DeleteWorkplace(c *fiber.Ctx) error {
	workplaceID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid workplace ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.workplaceRepo.DeleteWorkplace(ctx, workplaceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete workplace"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "workplace not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Workplace deleted",
		"workplace_id": workplaceID.Hex(),
	})
}
