package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Onboarding-System/models"
	"Employee-Onboarding-System/pkg/mailer"
	util "Employee-Onboarding-System/pkg/utils"
	"Employee-Onboarding-System/repository"
)

type EmployeeHandler struct {
	employeeRepo  repository.EmployeeRepository
	workplaceRepo repository.WorkplaceRepository
	mail          *mailer.Mailer
}

func NewEmployeeHandler(employeeRepo repository.EmployeeRepository, workplaceRepo repository.WorkplaceRepository, mail *mailer.Mailer) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo:  employeeRepo,
		workplaceRepo: workplaceRepo,
		mail:          mail,
	}
}

// CreateEmployee godoc
// @Summary Create Employee
// @Description Registers a new employee record. The record starts in the Pending collection and waits for approval.
// @Tags Employees
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Employee name"
// @Param email formData string true "Employee email"
// @Param phone formData string true "Phone (10 digits)"
// @Param position formData string true "Position"
// @Param workplace_id formData string true "Workplace ID"
// @Param address formData string false "Address"
// @Param photo formData file false "Profile photo"
// @Success 201 {object} models.EmployeeResponse "Employee created and queued for approval"
// @Failure 400 {object} object{error=string,errors=array} "Invalid payload or validation error"
// @Failure 500 {object} object{error=string} "Failed to create employee"
// @Router /createemployee [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	workplaceID, err := primitive.ObjectIDFromHex(payload.WorkplaceID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid workplace ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.workplaceRepo.GetWorkplaceByID(ctx, workplaceID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "workplace does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to verify workplace"})
	}

	photoURL, err := saveUpload(c, "photo", "photos")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	newEmployee := &models.Employee{
		ID:          primitive.NewObjectID(),
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		Address:     payload.Address,
		Position:    payload.Position,
		Photo:       photoURL,
		WorkplaceID: workplaceID,
		Status:      models.StatusPending,
		WorkStatus:  models.WorkStatusInactive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := h.employeeRepo.Create(ctx, newEmployee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create employee: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Employee created and queued for approval",
		"employee": newEmployee,
	})
}

// ApproveEmployee godoc
// @Summary Approve Employee
// @Description Moves a Pending employee to Approved. A second call on the same record answers 409 because the record is no longer Pending.
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} models.EmployeeResponse "Employee approved"
// @Failure 400 {object} object{error=string} "Invalid employee ID format"
// @Failure 404 {object} models.NotFoundErrorResponse "Employee not found"
// @Failure 409 {object} models.ConflictErrorResponse "Employee is no longer pending"
// @Router /makrkapprove/{id} [post]
func (h *EmployeeHandler) ApproveEmployee(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.TransitionStatus(ctx, employeeID, models.StatusPending, models.StatusApproved, "")
	if err != nil {
		return transitionError(c, err, "employee")
	}

	go h.mail.NotifyStatusChange(employee.Email, employee.Name, "Employee profile", models.StatusApproved, "")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Employee approved",
		"employee": employee,
	})
}

// RejectEmployee godoc
// @Summary Reject Employee
// @Description Moves a Pending employee to Rejected. The reply text is mandatory and is stored on the record.
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param reply body models.RejectPayload true "Rejection reason"
// @Success 200 {object} models.EmployeeResponse "Employee rejected"
// @Failure 400 {object} object{error=string,errors=array} "Invalid payload or missing reply"
// @Failure 404 {object} models.NotFoundErrorResponse "Employee not found"
// @Failure 409 {object} models.ConflictErrorResponse "Employee is no longer pending"
// @Router /markreject/{id} [post]
func (h *EmployeeHandler) RejectEmployee(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	var payload models.RejectPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.TransitionStatus(ctx, employeeID, models.StatusPending, models.StatusRejected, payload.Reply)
	if err != nil {
		return transitionError(c, err, "employee")
	}

	go h.mail.NotifyStatusChange(employee.Email, employee.Name, "Employee profile", models.StatusRejected, payload.Reply)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Employee rejected",
		"employee": employee,
	})
}

func (h *EmployeeHandler) AllPendingEmployees(c *fiber.Ctx) error {
	return h.allByStatus(c, models.StatusPending)
}

func (h *EmployeeHandler) AllApprovedEmployees(c *fiber.Ctx) error {
	return h.allByStatus(c, models.StatusApproved)
}

func (h *EmployeeHandler) AllRejectedEmployees(c *fiber.Ctx) error {
	return h.allByStatus(c, models.StatusRejected)
}

func (h *EmployeeHandler) allByStatus(c *fiber.Ctx, status string) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, err := h.employeeRepo.FindAllByStatus(ctx, status)
	if err != nil {
		log.Printf("Error fetching %s employees: %v", status, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch employees"})
	}
	return c.Status(fiber.StatusOK).JSON(employees)
}

func (h *EmployeeHandler) FetchEmployeeByID(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "employee not found"})
	}
	return c.Status(fiber.StatusOK).JSON(employee)
}

func (h *EmployeeHandler) FetchApprovedEmployeeByID(c *fiber.Ctx) error {
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
	return c.Status(fiber.StatusOK).JSON(employee)
}

// EditPendingEmployee replaces fields on a record that is still waiting for
// approval. The record keeps its identity and stays in Pending.
func (h *EmployeeHandler) EditPendingEmployee(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	updateData := bson.M{}
	if payload.Name != "" {
		updateData["name"] = payload.Name
	}
	if payload.Email != "" {
		updateData["email"] = payload.Email
	}
	if payload.Phone != "" {
		updateData["phone"] = payload.Phone
	}
	if payload.Address != "" {
		updateData["address"] = payload.Address
	}
	if payload.Position != "" {
		updateData["position"] = payload.Position
	}
	if payload.WorkplaceID != "" {
		workplaceID, err := primitive.ObjectIDFromHex(payload.WorkplaceID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid workplace ID format"})
		}
		updateData["workplace_id"] = workplaceID
	}
	if photoURL, err := saveUpload(c, "photo", "photos"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	} else if photoURL != "" {
		updateData["photo"] = photoURL
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no fields to update"})
	}

	employee, err := h.employeeRepo.UpdatePendingFields(ctx, employeeID, updateData)
	if err != nil {
		return transitionError(c, err, "employee")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Pending employee updated",
		"employee": employee,
	})
}

// EditApprovedEmployee never touches the approved record. It clones it with
// the requested changes into a brand-new Pending record, which re-enters the
// approval queue.
func (h *EmployeeHandler) EditApprovedEmployee(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	approved, err := h.employeeRepo.FindByIDAndStatus(ctx, employeeID, models.StatusApproved)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch employee"})
	}
	if approved == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "approved employee not found"})
	}

	resubmission := *approved
	resubmission.ID = primitive.NewObjectID()
	resubmission.Status = models.StatusPending
	resubmission.WorkStatus = models.WorkStatusInactive
	resubmission.Reply = ""
	resubmission.CreatedAt = time.Now()
	resubmission.UpdatedAt = time.Now()

	if payload.Name != "" {
		resubmission.Name = payload.Name
	}
	if payload.Email != "" {
		resubmission.Email = payload.Email
	}
	if payload.Phone != "" {
		resubmission.Phone = payload.Phone
	}
	if payload.Address != "" {
		resubmission.Address = payload.Address
	}
	if payload.Position != "" {
		resubmission.Position = payload.Position
	}
	if payload.WorkplaceID != "" {
		workplaceID, err := primitive.ObjectIDFromHex(payload.WorkplaceID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid workplace ID format"})
		}
		resubmission.WorkplaceID = workplaceID
	}
	if photoURL, err := saveUpload(c, "photo", "photos"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	} else if photoURL != "" {
		resubmission.Photo = photoURL
	}

	if _, err := h.employeeRepo.Create(ctx, &resubmission); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to resubmit employee: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Employee changes submitted for re-approval",
		"employee": resubmission,
	})
}

func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	status, err := statusFromScope(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.employeeRepo.Delete(ctx, employeeID, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete employee"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "employee not found in the addressed collection"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Employee deleted",
		"id":      employeeID.Hex(),
	})
}

// ChangeWorkStatus toggles the Active/Inactive flag on an approved employee.
// The approval status is untouched; a non-approved employee answers 409.
func (h *EmployeeHandler) ChangeWorkStatus(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	var payload models.WorkStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.UpdateWorkStatus(ctx, employeeID, payload.WorkStatus)
	if err != nil {
		return transitionError(c, err, "employee")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Work status updated",
		"employee": employee,
	})
}

// transitionError maps repository sentinels onto HTTP statuses shared by all
// approval endpoints.
func transitionError(c *fiber.Ctx, err error, kind string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": kind + " not found"})
	case errors.Is(err, repository.ErrStatusConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": kind + " is not in the required status"})
	default:
		log.Printf("Error on %s transition: %v", kind, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update " + kind})
	}
}
