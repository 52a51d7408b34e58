package handler

import (
	"errors"

	"go-portfolio-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SuggestionHandler struct {
	service service.SuggestionService
}

func NewSuggestionHandler(s service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{service: s}
}

// respondError maps service errors onto the HTTP taxonomy: validation -> 400,
// not found -> 404, anything else -> 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrSuggestionNotFound):
		return c.Status(404).JSON(fiber.Map{"success": false, "error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
}

// Create handles a submission from the contact form
// POST /api/suggestions
func (h *SuggestionHandler) Create(c *fiber.Ctx) error {
	var req service.CreateSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	created, err := h.service.Create(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Suggestion submitted successfully",
		"data":    created,
	})
}

// ListActive returns active suggestions, restricted to the caller's own
// unless the caller identifies as admin
// GET /api/suggestions?role=&email=&userId=
func (h *SuggestionHandler) ListActive(c *fiber.Ctx) error {
	filter := service.ListFilter{
		Role:   c.Query("role"),
		UserID: c.Query("userId"),
		Email:  c.Query("email"),
	}

	suggestions, err := h.service.ListActive(filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": suggestions})
}

// ListArchived returns archived suggestions; admin capability is enforced by
// the routing layer
// GET /api/suggestions/archived
func (h *SuggestionHandler) ListArchived(c *fiber.Ctx) error {
	suggestions, err := h.service.ListArchived()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": suggestions})
}

// Update applies partial fields to a suggestion
// PUT /api/suggestions/:id
func (h *SuggestionHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid suggestion ID"})
	}

	var req service.UpdateSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	updated, err := h.service.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Suggestion updated successfully",
		"data":    updated,
	})
}

// Archive soft-deletes a suggestion; it stays recoverable via restore
// DELETE /api/suggestions/:id
func (h *SuggestionHandler) Archive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid suggestion ID"})
	}

	if err := h.service.Archive(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Suggestion archived successfully"})
}

// Restore brings an archived suggestion back to the active state
// PUT /api/suggestions/:id/restore
func (h *SuggestionHandler) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid suggestion ID"})
	}

	restored, err := h.service.Restore(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Suggestion restored successfully",
		"data":    restored,
	})
}

// Purge deletes a suggestion and its permission links for good
// DELETE /api/suggestions/:id/permanent
func (h *SuggestionHandler) Purge(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid suggestion ID"})
	}

	if err := h.service.Purge(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Suggestion permanently deleted"})
}
