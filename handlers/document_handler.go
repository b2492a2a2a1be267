package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Onboarding-System/models"
	util "Employee-Onboarding-System/pkg/utils"
	"Employee-Onboarding-System/repository"
)

// StatusNotifier is called after a document transition so the owning employee
// can be told about it. Wired in the router from the employee repository and
// the mailer; nil disables notifications.
type StatusNotifier func(ctx context.Context, employeeID primitive.ObjectID, status, reply string)

// DocumentHandler carries the operations that are identical across the three
// document variants: the status transitions, the status-scoped listings, the
// point lookups and delete. Create/edit differ per variant and live in the
// aadhar/pan/bank handlers that embed this one.
type DocumentHandler[T models.Document] struct {
	repo   repository.DocumentRepository[T]
	key    string // envelope field name, e.g. "aadhar"
	kind   string // human-readable name for messages, e.g. "Aadhar"
	notify StatusNotifier
}

func NewDocumentHandler[T models.Document](repo repository.DocumentRepository[T], key, kind string, notify StatusNotifier) *DocumentHandler[T] {
	return &DocumentHandler[T]{
		repo:   repo,
		key:    key,
		kind:   kind,
		notify: notify,
	}
}

func (h *DocumentHandler[T]) Approve(c *fiber.Ctx) error {
	return h.transition(c, models.StatusApproved, "")
}

func (h *DocumentHandler[T]) Reject(c *fiber.Ctx) error {
	var payload models.RejectPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	return h.transition(c, models.StatusRejected, payload.Reply)
}

func (h *DocumentHandler[T]) transition(c *fiber.Ctx, to, reply string) error {
	documentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + h.key + " ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	document, err := h.repo.TransitionStatus(ctx, documentID, models.StatusPending, to, reply)
	if err != nil {
		return transitionError(c, err, h.key)
	}

	if h.notify != nil {
		h.notify(context.WithoutCancel(ctx), (*document).Owner(), to, reply)
	}

	message := h.kind + " approved"
	if to == models.StatusRejected {
		message = h.kind + " rejected"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
		h.key:     document,
	})
}

func (h *DocumentHandler[T]) AllPending(c *fiber.Ctx) error {
	return h.allByStatus(c, models.StatusPending)
}

func (h *DocumentHandler[T]) AllApproved(c *fiber.Ctx) error {
	return h.allByStatus(c, models.StatusApproved)
}

func (h *DocumentHandler[T]) AllRejected(c *fiber.Ctx) error {
	return h.allByStatus(c, models.StatusRejected)
}

func (h *DocumentHandler[T]) allByStatus(c *fiber.Ctx, status string) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	documents, err := h.repo.FindAllByStatus(ctx, status)
	if err != nil {
		log.Printf("Error fetching %s %s records: %v", status, h.key, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch " + h.key + " records"})
	}
	return c.Status(fiber.StatusOK).JSON(documents)
}

// FetchByOwner returns the employee's pending document. Detail pages use it
// before approval, addressed through the owning employee rather than the
// document's own id.
func (h *DocumentHandler[T]) FetchByOwner(c *fiber.Ctx) error {
	employeeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	document, err := h.repo.FindByOwnerAndStatus(ctx, employeeID, models.StatusPending)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch " + h.key})
	}
	if document == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no pending " + h.key + " found for this employee"})
	}
	return c.Status(fiber.StatusOK).JSON(document)
}

func (h *DocumentHandler[T]) FetchApprovedByID(c *fiber.Ctx) error {
	documentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + h.key + " ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	document, err := h.repo.FindByIDAndStatus(ctx, documentID, models.StatusApproved)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch " + h.key})
	}
	if document == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "approved " + h.key + " not found"})
	}
	return c.Status(fiber.StatusOK).JSON(document)
}

func (h *DocumentHandler[T]) Delete(c *fiber.Ctx) error {
	documentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + h.key + " ID format"})
	}

	status, err := statusFromScope(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.repo.Delete(ctx, documentID, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete " + h.key})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": h.key + " not found in the addressed collection"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": h.kind + " deleted",
		"id":      documentID.Hex(),
	})
}
