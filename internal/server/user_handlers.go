package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/user. Admin only; returns one page of users plus
// the dashboard totals.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	listing, err := s.userService.List(c.Context(), actorClaims(c), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(listing)
}

// GetUser handles GET /api/user/:userId.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	user, err := s.userService.Get(c.Context(), actorClaims(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /api/user/:userId.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		Password       string `json:"password"`
		ProfilePicture string `json:"profilePicture"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Update(c.Context(), actorClaims(c), id, service.UpdateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /api/user/:userId.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.userService.Delete(c.Context(), actorClaims(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON("User has been deleted")
}
