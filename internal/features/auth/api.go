package auth

import (
	"stitchmes/internal/config"
	"stitchmes/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	authController *AuthController
	config         *config.Config
}

func NewAuthApi(authController *AuthController, config *config.Config) *AuthApi {
	return &AuthApi{
		authController: authController,
		config:         config,
	}
}

// Setup registers auth routes
func (h *AuthApi) Setup(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", h.authController.Login)
	authGroup.Post("/logout", h.authController.Logout)
	authGroup.Get("/me", middleware.AuthMiddleware(h.config.SessionCookie, h.config.SkipAuth), h.authController.Me)
}
