package auth

import (
	"errors"
	"time"

	"stitchmes/internal/api"
	"stitchmes/internal/config"
	"stitchmes/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthController struct {
	Service AuthService
	Config  *config.Config
	Log     *zap.Logger
}

func NewAuthController(service AuthService, cfg *config.Config, log *zap.Logger) *AuthController {
	return &AuthController{Service: service, Config: cfg, Log: log}
}

type loginRequest struct {
	EmployeeNumber int    `json:"employee_number"`
	Password       string `json:"password"`
}

// Login verifies credentials and sets the HTTP-only session cookie
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	token, employee, err := ctrl.Service.Login(c.UserContext(), req.EmployeeNumber, req.Password)
	if errors.Is(err, ErrBadCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrBadCredentials.Error(),
		})
	}
	if err != nil {
		return api.HandleServiceError(c, ctrl.Log, ctrl.Config.IsProduction(), err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     ctrl.Config.SessionCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   ctrl.Config.IsProduction(),
		SameSite: "Lax",
		Expires:  time.Now().Add(12 * time.Hour),
	})

	return c.JSON(fiber.Map{
		"employee_number": employee.EmployeeNumber,
		"name":            employee.Name,
		"role":            employee.Role,
	})
}

// Logout clears the session cookie
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     ctrl.Config.SessionCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   ctrl.Config.IsProduction(),
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// Me echoes the claims of the current session
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
	return c.JSON(fiber.Map{
		"employee_number": claims.EmployeeNumber,
		"name":            claims.Name,
		"role":            claims.Role,
	})
}
