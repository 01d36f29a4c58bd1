package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/post. Public; supports the full filter set
// (userId, category, slug, postId, searchTerm) plus pagination.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	listing, err := s.postService.List(c.Context(), parsePostQuery(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(listing)
}

// CreatePost handles POST /api/post.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
		Image    string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Please fill all fields"))
	}

	post, err := s.postService.Create(c.Context(), actorClaims(c), service.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/post/:postId.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "postId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
		Image    string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Update(c.Context(), actorClaims(c), id, service.UpdatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/post/:postId.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "postId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.postService.Delete(c.Context(), actorClaims(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON("The post has been deleted")
}
