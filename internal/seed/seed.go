// Package seed creates demo data for development databases. Not used in
// production.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded account gets.
const DefaultPassword = "password123"

var categories = []string{
	models.DefaultPostCategory, "golang", "javascript", "react", "nextjs",
}

// Seeder populates the database with generated users, posts and comments.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to db.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded rows. Comments go first to respect foreign
// keys.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

// CreateUser persists a generated user. Overrides run before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       usernameFor(gofakeit.Username()),
		Email:          gofakeit.Email(),
		Password:       string(hashed),
		ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		CreatedAt:      s.pastTimestamp(120),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// CreateAdmin persists a generated admin account.
func (s *Seeder) CreateAdmin() (*models.User, error) {
	return s.CreateUser(func(u *models.User) {
		u.IsAdmin = true
	})
}

// CreatePost persists a generated post owned by user.
func (s *Seeder) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	title := strings.TrimSuffix(gofakeit.Sentence(5), ".")
	created := s.pastTimestamp(90)

	post := &models.Post{
		Title:     title,
		Slug:      models.Slugify(title),
		Content:   gofakeit.Paragraph(2, 4, 8, "\n\n"),
		Category:  categories[s.rand.Intn(len(categories))],
		Image:     fmt.Sprintf("https://picsum.photos/seed/%s/800/400", gofakeit.UUID()),
		UserID:    user.ID,
		CreatedAt: created,
		UpdatedAt: created,
	}
	for _, override := range overrides {
		override(post)
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// CreateComment persists a generated comment by user on post, liked by a
// random subset of likers.
func (s *Seeder) CreateComment(user *models.User, post *models.Post, likers []*models.User) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   gofakeit.Sentence(12),
		PostID:    post.ID,
		UserID:    user.ID,
		Likes:     models.UintSet{},
		CreatedAt: s.pastTimestamp(60),
	}
	for _, liker := range likers {
		if s.rand.Intn(3) == 0 {
			comment.ToggleLike(liker.ID)
		}
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// Run seeds numUsers accounts (one of them an admin), numPosts posts owned
// by the admin and a few comments per post.
func (s *Seeder) Run(numUsers, numPosts int) error {
	admin, err := s.CreateAdmin()
	if err != nil {
		return err
	}

	users := []*models.User{admin}
	for i := 1; i < numUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	for i := 0; i < numPosts; i++ {
		post, err := s.CreatePost(admin)
		if err != nil {
			return err
		}

		numComments := s.rand.Intn(4)
		for j := 0; j < numComments; j++ {
			commenter := users[s.rand.Intn(len(users))]
			if _, err := s.CreateComment(commenter, post, users); err != nil {
				return err
			}
		}
	}
	return nil
}

// pastTimestamp picks a moment up to maxDays in the past so listings and
// last-month counters have a realistic spread.
func (s *Seeder) pastTimestamp(maxDays int) time.Time {
	daysBack := s.rand.Intn(maxDays)
	hoursBack := s.rand.Intn(24)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(hoursBack) * time.Hour)
}

// usernameFor lowercases and strips a generated name so it passes the
// username rules, with digits appended against collisions.
func usernameFor(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	base := b.String()
	if len(base) < 3 {
		base = "user"
	}
	if len(base) > 16 {
		base = base[:16]
	}
	return fmt.Sprintf("%s%04d", base, gofakeit.Number(0, 9999))
}
