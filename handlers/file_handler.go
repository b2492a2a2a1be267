package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Employee-Onboarding-System/models"
)

// saveUpload stores a multipart file under ./uploads/<dir>/ with a uuid name
// and returns the public URL path. Returns ("", nil) when the field carries
// no file, so callers can treat uploads as optional.
func saveUpload(c *fiber.Ctx, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".pdf", ".webp":
	default:
		return "", fmt.Errorf("file type %s is not allowed", ext)
	}

	uniqueFileName := uuid.New().String() + ext
	filePath := fmt.Sprintf("./uploads/%s/%s", dir, uniqueFileName)

	if err := c.SaveFile(file, filePath); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return fmt.Sprintf("/uploads/%s/%s", dir, uniqueFileName), nil
}

// statusFromScope maps the explicit ?scope= query parameter to a lifecycle
// status. Every delete call site names the collection it targets.
func statusFromScope(c *fiber.Ctx) (string, error) {
	scope := c.Query("scope", "pending")
	switch scope {
	case "pending":
		return models.StatusPending, nil
	case "approved":
		return models.StatusApproved, nil
	case "rejected":
		return models.StatusRejected, nil
	default:
		return "", fmt.Errorf("unknown scope %q", scope)
	}
}
