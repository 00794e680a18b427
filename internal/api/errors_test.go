package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	common_models "stitchmes/internal/common/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func testApp(production bool, err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return HandleServiceError(c, zap.NewNop(), production, err)
	})
	return app
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		production bool
		wantStatus int
		wantError  string
	}{
		{
			name:       "Validation Error",
			err:        common_models.NewValidationError("pieces", "must be a positive number"),
			wantStatus: fiber.StatusBadRequest,
			wantError:  "pieces: must be a positive number",
		},
		{
			name:       "Wrapped Validation Error",
			err:        errors.Join(errors.New("create entry"), common_models.NewValidationError("shift_date", "must be a YYYY-MM-DD date")),
			wantStatus: fiber.StatusBadRequest,
			wantError:  "shift_date: must be a YYYY-MM-DD date",
		},
		{
			name:       "Not Found",
			err:        common_models.ErrNotFound,
			wantStatus: fiber.StatusNotFound,
			wantError:  "Not found",
		},
		{
			name:       "Forbidden",
			err:        common_models.ErrForbidden,
			wantStatus: fiber.StatusForbidden,
			wantError:  "Forbidden",
		},
		{
			name:       "Unexpected In Dev",
			err:        errors.New("pq: connection refused"),
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "pq: connection refused",
		},
		{
			name:       "Unexpected In Production Is Generic",
			err:        errors.New("pq: connection refused"),
			production: true,
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(tt.production, tt.err)
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
		})
	}
}
