package service

import (
	"context"
	"time"

	"inkwell/internal/authz"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/token"
)

// CommentService carries the comment lifecycle and like-toggle operations.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateCommentInput is the allow-listed set of fields for a new comment.
// UserID is carried in the body by the client and must match the actor.
type CreateCommentInput struct {
	Content string
	PostID  uint
	UserID  uint
}

// CommentListing is the paginated admin listing envelope.
type CommentListing struct {
	Comments          []models.Comment `json:"comments"`
	TotalComments     int64            `json:"totalComments"`
	LastMonthComments int64            `json:"lastMonthComments"`
}

// Create stores a comment for the acting user. The body's userId must match
// the token subject or the request is rejected outright.
func (s *CommentService) Create(ctx context.Context, actor token.Claims, in CreateCommentInput) (*models.Comment, error) {
	if in.UserID != actor.UserID {
		return nil, models.NewForbiddenError("You are not allowed to create this comment")
	}
	if in.Content == "" || in.PostID == 0 {
		return nil, models.NewValidationError("All fields are required")
	}

	comment := &models.Comment{
		Content: in.Content,
		PostID:  in.PostID,
		UserID:  in.UserID,
		Likes:   models.UintSet{},
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost returns all comments on a post, newest first. Public.
func (s *CommentService) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// List returns one page of all comments plus the dashboard counts. Admin only.
func (s *CommentService) List(ctx context.Context, actor token.Claims, p repository.PageParams) (*CommentListing, error) {
	if !authz.AdminOnly(actor) {
		return nil, models.NewForbiddenError("You are not allowed to get all comments")
	}

	comments, err := s.commentRepo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	total, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	lastMonth, err := s.commentRepo.CountCreatedSince(ctx, repository.LastMonthStart(time.Now()))
	if err != nil {
		return nil, err
	}

	return &CommentListing{Comments: comments, TotalComments: total, LastMonthComments: lastMonth}, nil
}

// Edit replaces a comment's content. Allowed for the comment's owner or an
// admin.
func (s *CommentService) Edit(ctx context.Context, actor token.Claims, commentID uint, content string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !authz.SelfOrAdmin(actor, comment.UserID) {
		return nil, models.NewForbiddenError("You are not allowed to edit this comment")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment. Allowed for the comment's owner or an admin.
func (s *CommentService) Delete(ctx context.Context, actor token.Claims, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !authz.SelfOrAdmin(actor, comment.UserID) {
		return models.NewForbiddenError("You are not allowed to delete this comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// ToggleLike likes the comment on behalf of the actor, or unlikes it when
// already liked. Read-modify-write: the final save is last-write-wins, so
// concurrent toggles on the same comment can drift the stored counter.
func (s *CommentService) ToggleLike(ctx context.Context, actor token.Claims, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	comment.ToggleLike(actor.UserID)

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
