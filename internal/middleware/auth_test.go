package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stitchmes/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

const testCookie = "mes_session"

func newAuthApp(skipAuth bool, roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{AuthMiddleware(testCookie, skipAuth)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		claims := Claims(c)
		return c.JSON(fiber.Map{"employee_number": claims.EmployeeNumber, "role": claims.Role})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	utils.SetSecret("test-secret")

	workerToken, err := utils.GenerateToken(3001, "Marisol Vega", utils.RoleWorker)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		wantStatus int
	}{
		{
			name:       "No Credential",
			setup:      func(req *http.Request) {},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "Valid Cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: testCookie, Value: workerToken})
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "Valid Bearer Fallback",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+workerToken)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "Malformed Token",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: testCookie, Value: "not-a-jwt"})
			},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "Wrong Cookie Name Ignored",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "other_session", Value: workerToken})
			},
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	app := newAuthApp(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setup(req)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareSkipAuth(t *testing.T) {
	app := newAuthApp(true)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestRequireRoles(t *testing.T) {
	utils.SetSecret("test-secret")

	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{
			name:       "Worker Blocked From Reports",
			role:       utils.RoleWorker,
			allowed:    []string{utils.RoleManager, utils.RoleAdmin},
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "Manager Allowed",
			role:       utils.RoleManager,
			allowed:    []string{utils.RoleManager, utils.RoleAdmin},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "Admin Allowed",
			role:       utils.RoleAdmin,
			allowed:    []string{utils.RoleManager, utils.RoleAdmin},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "Worker Allowed On Entry Routes",
			role:       utils.RoleWorker,
			allowed:    []string{utils.RoleWorker, utils.RoleManager, utils.RoleAdmin},
			wantStatus: fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := utils.GenerateToken(1, "Test User", tt.role)
			if err != nil {
				t.Fatalf("GenerateToken: %v", err)
			}

			app := newAuthApp(false, tt.allowed...)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRequireRolesWithoutClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/x", RequireRoles(utils.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
