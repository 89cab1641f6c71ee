package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// default list hanya record aktif — toggle include_inactive harus eksplisit
func TestWantInactive(t *testing.T) {
	app := fiber.New()
	var got bool
	app.Get("/t", func(c *fiber.Ctx) error {
		got = wantInactive(c)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"absent defaults to active-only", "", false},
		{"empty value stays active-only", "?include_inactive=", false},
		{"1 shows all", "?include_inactive=1", true},
		{"true shows all", "?include_inactive=true", true},
		{"yes shows all", "?include_inactive=yes", true},
		{"case and padding tolerated", "?include_inactive=%20YES%20", true},
		{"0 stays active-only", "?include_inactive=0", false},
		{"false stays active-only", "?include_inactive=false", false},
		{"garbage stays active-only", "?include_inactive=maybe", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/t"+tc.query, nil)
			if _, err := app.Test(req); err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if got != tc.want {
				t.Fatalf("wantInactive(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}
