package server

import (
	"encoding/json"

	"foodbridge/internal/cache"
	"foodbridge/internal/models"
	"foodbridge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAvailableDonations handles GET /donations/available
// @Summary Browse available donations
// @Description List available donations, newest first
// @Tags donations
// @Produce json
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Donation
// @Router /donations/available [get]
func (s *Server) GetAvailableDonations(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	donations, err := s.donationService.ListAvailable(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(donations)
}

// GetDonation handles GET /donations/:id
// @Summary Get donation detail
// @Tags donations
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} models.Donation
// @Failure 404 {object} models.ErrorResponse
// @Router /donations/{id} [get]
func (s *Server) GetDonation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Serve from cache when possible; details are read far more often than
	// they change.
	if cached := cache.GetDonation(c.Context(), id); cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	donation, err := s.donationService.GetDonation(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	if payload, jsonErr := json.Marshal(donation); jsonErr == nil {
		cache.SetDonation(c.Context(), id, string(payload))
	}

	return c.JSON(donation)
}

// GetMyDonations handles GET /donations/my-donations
// @Summary List the caller's donations
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Donation
// @Router /donations/my-donations [get]
func (s *Server) GetMyDonations(c *fiber.Ctx) error {
	donations, err := s.donationService.ListByDonor(c.Context(), userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(donations)
}

// GetMyClaims handles GET /donations/my-claims
// @Summary List donations claimed by or reserved for the caller
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Donation
// @Router /donations/my-claims [get]
func (s *Server) GetMyClaims(c *fiber.Ctx) error {
	donations, err := s.donationService.ListClaims(c.Context(), userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(donations)
}

// CreateDonation handles POST /donations
// @Summary List surplus food for donation
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateDonationInput true "Donation details"
// @Success 201 {object} models.Donation
// @Failure 400 {object} models.ErrorResponse
// @Router /donations [post]
func (s *Server) CreateDonation(c *fiber.Ctx) error {
	var input service.CreateDonationInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	donation, err := s.donationService.CreateDonation(c.Context(), userID(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(donation)
}

// ClaimDonation handles PATCH /donations/:id/claim
// @Summary Claim an available donation
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} models.Donation
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /donations/{id}/claim [patch]
func (s *Server) ClaimDonation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	donation, err := s.donationService.ClaimDonation(c.Context(), id, userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	cache.InvalidateDonation(c.Context(), id)

	return c.JSON(donation)
}

// UpdateDonationStatus handles PATCH /donations/:id/status
// @Summary Change a donation's lifecycle status
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Param request body object{status=string} true "Target status"
// @Success 200 {object} models.Donation
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /donations/{id}/status [patch]
func (s *Server) UpdateDonationStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Status == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status is required"))
	}

	donation, err := s.donationService.UpdateStatus(c.Context(), id, userID(c), req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}

	cache.InvalidateDonation(c.Context(), id)

	return c.JSON(donation)
}

// DeleteDonation handles DELETE /donations/:id
// @Summary Delete a donation listing
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /donations/{id} [delete]
func (s *Server) DeleteDonation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.donationService.DeleteDonation(c.Context(), id, userID(c)); err != nil {
		return respondServiceError(c, err)
	}

	cache.InvalidateDonation(c.Context(), id)

	return c.JSON(fiber.Map{"message": "Donation deleted"})
}
