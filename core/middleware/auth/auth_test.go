package auth_test

import (
	"net/http/httptest"
	"testing"

	"trade-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		header     string
		query      string
		wantStatus int
	}{
		{"Disabled", "", "", "", 200},
		{"Valid Header", "secret", "secret", "", 200},
		{"Valid Query", "secret", "", "secret", 200},
		{"Missing Key", "secret", "", "", 401},
		{"Wrong Key", "secret", "nope", "", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}

			resp, err := setupApp(tt.apiKey).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
