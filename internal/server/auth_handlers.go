package server

import (
	"math/rand/v2"
	"strings"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/token"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Signup handles POST /api/auth/signup.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("All fields are required"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("All fields are required"))
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
	})
}

// Signin handles POST /api/auth/signin. On success the session token is set
// as an HTTP-only cookie and the user record is returned.
func (s *Server) Signin(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("All fields are required"))
	}

	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("All fields are required"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, models.NewNotFoundError("User not found"))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, models.NewUnauthorizedError("Invalid password"))
	}

	if err := s.setSessionCookie(c, user); err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	return c.JSON(user)
}

// Google handles POST /api/auth/google. An existing account signs in; an
// unknown email gets an account with a random password and a derived
// username.
func (s *Server) Google(c *fiber.Ctx) error {
	var req struct {
		Email          string `json:"email"`
		Name           string `json:"name"`
		GooglePhotoURL string `json:"googlePhotoUrl"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("All fields are required"))
	}
	if req.Email == "" || req.Name == "" {
		return models.RespondWithError(c,
			models.NewValidationError("All fields are required"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user != nil {
		if err := s.setSessionCookie(c, user); err != nil {
			return models.RespondWithError(c, models.NewInternalError(err))
		}
		return c.JSON(user)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(randomPassword()), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user = &models.User{
		Username:       derivedUsername(req.Name),
		Email:          req.Email,
		Password:       string(hashed),
		ProfilePicture: req.GooglePhotoURL,
	}
	if user.ProfilePicture == "" {
		user.ProfilePicture = models.DefaultProfilePicture
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.setSessionCookie(c, user); err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Signout handles POST /api/user/signout by clearing the session cookie.
func (s *Server) Signout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "User has been signed out"})
}

// setSessionCookie issues a token for the user and attaches it as the
// session cookie.
func (s *Server) setSessionCookie(c *fiber.Ctx, user *models.User) error {
	signed, err := s.tokens.Issue(token.Claims{UserID: user.ID, IsAdmin: user.IsAdmin})
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    signed,
		Expires:  time.Now().Add(time.Duration(s.config.TokenTTLHours) * time.Hour),
		HTTPOnly: true,
		Secure:   s.config.Env == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// derivedUsername builds a username from a display name: lowercased, spaces
// removed, plus four random digits to dodge collisions.
func derivedUsername(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	digits := []byte{
		byte('0' + rand.IntN(10)),
		byte('0' + rand.IntN(10)),
		byte('0' + rand.IntN(10)),
		byte('0' + rand.IntN(10)),
	}
	return base + string(digits)
}

// randomPassword generates the throwaway password stored for accounts
// created through Google sign-in.
func randomPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
