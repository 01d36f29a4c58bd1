package service

import (
	"context"
	"time"

	"inkwell/internal/authz"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/token"
)

// PostService carries the post lifecycle operations.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePostInput is the allow-listed set of fields for a new post.
type CreatePostInput struct {
	Title    string
	Content  string
	Category string
	Image    string
}

// UpdatePostInput is the allow-listed set of mutable post fields. The slug
// is deliberately absent: it is fixed at creation time.
type UpdatePostInput struct {
	Title    string
	Content  string
	Category string
	Image    string
}

// PostListing is the paginated listing envelope.
type PostListing struct {
	Posts          []models.Post `json:"posts"`
	TotalPosts     int64         `json:"totalPosts"`
	LastMonthPosts int64         `json:"lastMonthPosts"`
}

// Create publishes a new post owned by the acting admin. The slug is derived
// from the title once, here.
func (s *PostService) Create(ctx context.Context, actor token.Claims, in CreatePostInput) (*models.Post, error) {
	if !authz.AdminOnly(actor) {
		return nil, models.NewForbiddenError("You are not allowed to create a post")
	}
	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Please fill all fields")
	}

	post := &models.Post{
		Title:    in.Title,
		Slug:     models.Slugify(in.Title),
		Content:  in.Content,
		Category: in.Category,
		Image:    in.Image,
		UserID:   actor.UserID,
	}
	if post.Category == "" {
		post.Category = models.DefaultPostCategory
	}
	if post.Image == "" {
		post.Image = models.DefaultPostImage
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update mutates the allow-listed fields of a post. Only the owning admin
// may update it; ownership is checked against the post's recorded owner.
func (s *PostService) Update(ctx context.Context, actor token.Claims, postID uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !authz.OwnerAdmin(actor, post.UserID) {
		return nil, models.NewForbiddenError("You are not allowed to update this post")
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.Category != "" {
		post.Category = in.Category
	}
	if in.Image != "" {
		post.Image = in.Image
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Only the owning admin may delete it.
func (s *PostService) Delete(ctx context.Context, actor token.Claims, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !authz.OwnerAdmin(actor, post.UserID) {
		return models.NewForbiddenError("You are not allowed to delete this post")
	}
	return s.postRepo.Delete(ctx, postID)
}

// List returns one page of posts matching the provided filters plus the
// dashboard counts. Public: no authorization. A bare slug query is served
// through the cached slug lookup; everything else goes through the filter
// pipeline.
func (s *PostService) List(ctx context.Context, q repository.PostQuery) (*PostListing, error) {
	posts, err := s.listPosts(ctx, q)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	lastMonth, err := s.postRepo.CountCreatedSince(ctx, repository.LastMonthStart(time.Now()))
	if err != nil {
		return nil, err
	}

	return &PostListing{Posts: posts, TotalPosts: total, LastMonthPosts: lastMonth}, nil
}

// listPosts resolves the page of posts for a listing query. A missing slug is
// an empty page, not an error; the listing endpoint never 404s.
func (s *PostService) listPosts(ctx context.Context, q repository.PostQuery) ([]models.Post, error) {
	if !q.SlugOnly() {
		return s.postRepo.List(ctx, q)
	}

	post, err := s.postRepo.GetBySlug(ctx, q.Slug)
	if err != nil {
		if models.IsNotFound(err) {
			return []models.Post{}, nil
		}
		return nil, err
	}
	return []models.Post{*post}, nil
}
