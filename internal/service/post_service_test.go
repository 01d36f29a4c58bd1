package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn            func(context.Context, *models.Post) error
	getByIDFn           func(context.Context, uint) (*models.Post, error)
	getBySlugFn         func(context.Context, string) (*models.Post, error)
	updateFn            func(context.Context, *models.Post) error
	deleteFn            func(context.Context, uint) error
	listFn              func(context.Context, repository.PostQuery) ([]models.Post, error)
	countFn             func(context.Context) (int64, error)
	countCreatedSinceFn func(context.Context, time.Time) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, q repository.PostQuery) ([]models.Post, error) {
	return s.listFn(ctx, q)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *postRepoStub) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return s.countCreatedSinceFn(ctx, since)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:            func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:           func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getBySlugFn:         func(_ context.Context, _ string) (*models.Post, error) { return &models.Post{}, nil },
		updateFn:            func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:            func(_ context.Context, _ uint) error { return nil },
		listFn:              func(_ context.Context, _ repository.PostQuery) ([]models.Post, error) { return nil, nil },
		countFn:             func(_ context.Context) (int64, error) { return 0, nil },
		countCreatedSinceFn: func(_ context.Context, _ time.Time) (int64, error) { return 0, nil },
	}
}

// assertAppError asserts that err is an AppError with the given status and
// client-facing message.
func assertAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, status, appErr.StatusCode)
	assert.Equal(t, message, appErr.Message)
}

var (
	adminActor = token.Claims{UserID: 1, IsAdmin: true}
	plainActor = token.Claims{UserID: 2}
)

func TestPostService_Create_Authorization(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo())
	_, err := svc.Create(context.Background(), plainActor, CreatePostInput{
		Title:   "A Title",
		Content: "some content",
	})
	assertAppError(t, err, 403, "You are not allowed to create a post")
}

func TestPostService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreatePostInput
	}{
		{"missing title", CreatePostInput{Content: "body"}},
		{"missing content", CreatePostInput{Title: "title"}},
		{"missing both", CreatePostInput{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Create(ctx, adminActor, tt.input)
			assertAppError(t, err, 400, "Please fill all fields")
		})
	}
}

func TestPostService_Create_Success(t *testing.T) {
	t.Parallel()

	var stored *models.Post
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 7
		stored = p
		return nil
	}

	svc := NewPostService(repo)
	post, err := svc.Create(context.Background(), adminActor, CreatePostInput{
		Title:   "Why Goroutines Scale",
		Content: "channels all the way down",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, uint(7), post.ID)
	assert.Equal(t, "why-goroutines-scale", post.Slug)
	assert.Equal(t, models.DefaultPostCategory, post.Category)
	assert.Equal(t, models.DefaultPostImage, post.Image)
	// Owner always comes from the token, never from the request body.
	assert.Equal(t, adminActor.UserID, post.UserID)
}

func TestPostService_Create_KeepsProvidedCategoryAndImage(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo())
	post, err := svc.Create(context.Background(), adminActor, CreatePostInput{
		Title:    "Fiber Routing Patterns",
		Content:  "grouping and middleware",
		Category: "golang",
		Image:    "https://cdn.example.com/fiber.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "golang", post.Category)
	assert.Equal(t, "https://cdn.example.com/fiber.png", post.Image)
}

func TestPostService_Update_Ownership(t *testing.T) {
	t.Parallel()

	ownedByOne := func(_ context.Context, _ uint) (*models.Post, error) {
		return &models.Post{ID: 1, UserID: 1, Title: "old", Slug: "old", Content: "old"}, nil
	}

	t.Run("admin who does not own the post cannot update", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = ownedByOne
		svc := NewPostService(repo)
		otherAdmin := token.Claims{UserID: 3, IsAdmin: true}
		_, err := svc.Update(context.Background(), otherAdmin, 1, UpdatePostInput{Title: "new"})
		assertAppError(t, err, 403, "You are not allowed to update this post")
	})

	t.Run("non-admin owner cannot update", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, UserID: 2}, nil
		}
		svc := NewPostService(repo)
		_, err := svc.Update(context.Background(), plainActor, 1, UpdatePostInput{Title: "new"})
		assertAppError(t, err, 403, "You are not allowed to update this post")
	})

	t.Run("owning admin updates only provided fields", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{
				ID: 1, UserID: 1,
				Title: "Old Title", Slug: "old-title",
				Content: "old content", Category: "golang",
			}, nil
		}
		svc := NewPostService(repo)
		post, err := svc.Update(context.Background(), adminActor, 1, UpdatePostInput{Content: "fresh content"})
		require.NoError(t, err)
		assert.Equal(t, "fresh content", post.Content)
		assert.Equal(t, "Old Title", post.Title)
		assert.Equal(t, "golang", post.Category)
		// The slug is fixed at creation time and never rewritten.
		assert.Equal(t, "old-title", post.Slug)
	})

	t.Run("missing post propagates not found", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post not found")
		}
		svc := NewPostService(repo)
		_, err := svc.Update(context.Background(), adminActor, 99, UpdatePostInput{Title: "x"})
		assertAppError(t, err, 404, "Post not found")
	})
}

func TestPostService_Delete_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("owning admin can delete", func(t *testing.T) {
		t.Parallel()
		deleted := false
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, UserID: 1}, nil
		}
		repo.deleteFn = func(_ context.Context, id uint) error {
			deleted = true
			return nil
		}
		svc := NewPostService(repo)
		require.NoError(t, svc.Delete(context.Background(), adminActor, 1))
		assert.True(t, deleted)
	})

	t.Run("non-owner admin cannot delete", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, UserID: 9}, nil
		}
		svc := NewPostService(repo)
		err := svc.Delete(context.Background(), adminActor, 1)
		assertAppError(t, err, 403, "You are not allowed to delete this post")
	})
}

func TestPostService_List_Envelope(t *testing.T) {
	t.Parallel()

	repo := noopPostRepo()
	repo.listFn = func(_ context.Context, q repository.PostQuery) ([]models.Post, error) {
		return []models.Post{{ID: 1}, {ID: 2}}, nil
	}
	repo.countFn = func(_ context.Context) (int64, error) { return 12, nil }
	repo.countCreatedSinceFn = func(_ context.Context, since time.Time) (int64, error) {
		assert.False(t, since.IsZero())
		return 3, nil
	}

	svc := NewPostService(repo)
	listing, err := svc.List(context.Background(), repository.PostQuery{})
	require.NoError(t, err)
	assert.Len(t, listing.Posts, 2)
	assert.Equal(t, int64(12), listing.TotalPosts)
	assert.Equal(t, int64(3), listing.LastMonthPosts)
}

func TestPostService_List_SlugLookup(t *testing.T) {
	t.Parallel()

	t.Run("bare slug query uses the cached lookup", func(t *testing.T) {
		repo := noopPostRepo()
		repo.listFn = func(_ context.Context, _ repository.PostQuery) ([]models.Post, error) {
			t.Fatal("bare slug query must not reach the filter pipeline")
			return nil, nil
		}
		repo.getBySlugFn = func(_ context.Context, slug string) (*models.Post, error) {
			assert.Equal(t, "why-goroutines-scale", slug)
			return &models.Post{ID: 7, Slug: slug}, nil
		}
		repo.countFn = func(_ context.Context) (int64, error) { return 12, nil }

		svc := NewPostService(repo)
		listing, err := svc.List(context.Background(), repository.PostQuery{Slug: "why-goroutines-scale"})
		require.NoError(t, err)
		require.Len(t, listing.Posts, 1)
		assert.Equal(t, uint(7), listing.Posts[0].ID)
		assert.Equal(t, int64(12), listing.TotalPosts)
	})

	t.Run("missing slug is an empty page, not an error", func(t *testing.T) {
		repo := noopPostRepo()
		repo.getBySlugFn = func(_ context.Context, _ string) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post not found")
		}

		svc := NewPostService(repo)
		listing, err := svc.List(context.Background(), repository.PostQuery{Slug: "gone"})
		require.NoError(t, err)
		assert.Empty(t, listing.Posts)
	})

	t.Run("slug combined with another filter stays on the filter pipeline", func(t *testing.T) {
		repo := noopPostRepo()
		repo.getBySlugFn = func(_ context.Context, _ string) (*models.Post, error) {
			t.Fatal("filtered query must not use the slug lookup")
			return nil, nil
		}
		listed := false
		repo.listFn = func(_ context.Context, q repository.PostQuery) ([]models.Post, error) {
			listed = true
			assert.Equal(t, "intro", q.Slug)
			assert.Equal(t, "react", q.Category)
			return nil, nil
		}

		svc := NewPostService(repo)
		_, err := svc.List(context.Background(), repository.PostQuery{Slug: "intro", Category: "react"})
		require.NoError(t, err)
		assert.True(t, listed)
	})
}
