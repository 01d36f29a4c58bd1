package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/comment. Responds 200, not 201; the
// status is part of the client contract.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
		PostID  uint   `json:"postId"`
		UserID  uint   `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("All fields are required"))
	}

	comment, err := s.commentService.Create(c.Context(), actorClaims(c), service.CreateCommentInput{
		Content: req.Content,
		PostID:  req.PostID,
		UserID:  req.UserID,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comment)
}

// GetPostComments handles GET /api/comment/post/:postId. Public; newest
// first.
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	comments, err := s.commentService.ListByPost(c.Context(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comments)
}

// GetComments handles GET /api/comment. Admin only; returns one page of all
// comments plus the dashboard totals. Unlike the other listings this one
// defaults to oldest first; only sort=desc flips it.
func (s *Server) GetComments(c *fiber.Ctx) error {
	page := parsePage(c)
	page.SortAscending = c.Query("sort") != "desc"

	listing, err := s.commentService.List(c.Context(), actorClaims(c), page)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(listing)
}

// EditComment handles PUT /api/comment/:commentId.
func (s *Server) EditComment(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Edit(c.Context(), actorClaims(c), id, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comment)
}

// LikeComment handles PUT /api/comment/:commentId/like. Toggles the acting
// user's like.
func (s *Server) LikeComment(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	comment, err := s.commentService.ToggleLike(c.Context(), actorClaims(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comment/:commentId.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.commentService.Delete(c.Context(), actorClaims(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON("Comment has been deleted")
}
