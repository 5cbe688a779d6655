package handlers

import (
	"errors"
	"net/url"

	"bizcardx/internal/dto"
	"bizcardx/internal/repository"
	"bizcardx/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CardHandler struct {
	cardService *service.CardService
	logger      *zap.Logger
}

func NewCardHandler(cardService *service.CardService, logger *zap.Logger) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		logger:      logger,
	}
}

// ScanCard accepts a multipart card image, runs OCR and returns the
// classified record together with the recognized tokens and their boxes.
// Nothing is persisted; the client saves the reviewed record via CreateCard.
func (h *CardHandler) ScanCard(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	result, err := h.cardService.ScanImage(c.Context(), src, file.Filename)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) || errors.Is(err, service.ErrFileTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to scan card", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// CreateCard persists a classified record.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var req dto.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.cardService.SaveCard(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrHolderRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, repository.ErrCardExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Card data already exists",
			})
		}
		h.logger.Error("Failed to save card", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save card",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCards returns every stored card.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	cards, err := h.cardService.ListCards(c.Context())
	if err != nil {
		h.logger.Error("Failed to list cards", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list cards",
		})
	}

	return c.JSON(cards)
}

// ListHolders returns the stored holder names.
func (h *CardHandler) ListHolders(c *fiber.Ctx) error {
	holders, err := h.cardService.ListHolders(c.Context())
	if err != nil {
		h.logger.Error("Failed to list holders", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list holders",
		})
	}

	if holders == nil {
		holders = []string{}
	}
	return c.JSON(holders)
}

// UpdateCardField updates one column of the card keyed by the holder name.
func (h *CardHandler) UpdateCardField(c *fiber.Ctx) error {
	holder, err := url.PathUnescape(c.Params("holder"))
	if err != nil || holder == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid holder name",
		})
	}

	var req dto.UpdateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.cardService.UpdateField(c.Context(), holder, req.Column, req.Value); err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownColumn):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, repository.ErrCardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to update card", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update card",
		})
	}

	return c.JSON(fiber.Map{"status": "updated"})
}

// DeleteCard removes the card keyed by the holder name.
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	holder, err := url.PathUnescape(c.Params("holder"))
	if err != nil || holder == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid holder name",
		})
	}

	if err := h.cardService.DeleteCard(c.Context(), holder); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to delete card", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete card",
		})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}
