package server

import (
	"foodbridge/internal/cache"
	"foodbridge/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest handles POST /requests
// @Summary Submit a pickup request for a donation
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{donation_id=int,message=string} true "Request details"
// @Success 201 {object} models.PickupRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /requests [post]
func (s *Server) CreateRequest(c *fiber.Ctx) error {
	var req struct {
		DonationID uint   `json:"donation_id"`
		Message    string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.DonationID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Donation ID is required"))
	}

	request, err := s.requestService.CreateRequest(c.Context(), userID(c), req.DonationID, req.Message)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetMyRequests handles GET /requests/my-requests
// @Summary List the caller's pickup requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PickupRequest
// @Router /requests/my-requests [get]
func (s *Server) GetMyRequests(c *fiber.Ctx) error {
	requests, err := s.requestService.ListMine(c.Context(), userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// GetIncomingRequests handles GET /requests/incoming
// @Summary List requests against the caller's donations
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PickupRequest
// @Router /requests/incoming [get]
func (s *Server) GetIncomingRequests(c *fiber.Ctx) error {
	requests, err := s.requestService.ListIncoming(c.Context(), userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// ApproveRequest handles POST /requests/:id/approve
// @Summary Approve a pending pickup request
// @Description Approving reserves the donation for the requester and rejects competing requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} models.PickupRequest
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /requests/{id}/approve [post]
func (s *Server) ApproveRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.requestService.ApproveRequest(c.Context(), id, userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	cache.InvalidateDonation(c.Context(), request.DonationID)

	return c.JSON(request)
}

// RejectRequest handles POST /requests/:id/reject
// @Summary Reject a pending pickup request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} models.PickupRequest
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /requests/{id}/reject [post]
func (s *Server) RejectRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.requestService.RejectRequest(c.Context(), id, userID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(request)
}

// DeleteRequest handles DELETE /requests/:id
// @Summary Withdraw a pickup request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /requests/{id} [delete]
func (s *Server) DeleteRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.requestService.DeleteRequest(c.Context(), id, userID(c)); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Request withdrawn"})
}
