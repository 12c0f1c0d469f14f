package server

import (
	"recipebox/internal/models"
	"recipebox/internal/observability"
	"recipebox/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// registerRequest is the explicit shape of a registration payload.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the explicit shape of a login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	if err := validation.ValidateRegistration(req.Username, req.Email, req.Password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}

	// Concurrent duplicate registrations are resolved by the store rejecting
	// the second write; the unique-violation surfaces as DuplicateField.
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(
		models.OKMessage("User registered successfully", user))
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		observability.AuthFailures.WithLabelValues("invalid_credentials").Inc()
		return models.NewUnauthenticatedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		observability.AuthFailures.WithLabelValues("invalid_credentials").Inc()
		return models.NewUnauthenticatedError("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.NewInternalError(err)
	}

	return c.JSON(models.OKMessage("Login successful", fiber.Map{
		"token": token,
		"user":  user,
	}))
}
