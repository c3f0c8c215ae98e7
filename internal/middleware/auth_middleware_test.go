package middleware_test

import (
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/yohanvishvajith/sintravels-sub000/internal/auth"
	"github.com/yohanvishvajith/sintravels-sub000/internal/middleware"
)

func TestMain(m *testing.M) {
	os.Setenv("AUTH_SECRET", "test-secret")
	os.Exit(m.Run())
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.AuthGate())
	handler := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Get("X-User-Id"), "role": c.Get("X-User-Role")})
	}
	app.Get("/api/jobs", handler)
	app.Get("/api/user/me", handler)
	app.Get("/api/admin/jobs", handler)
	return app
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.CreateToken(auth.TokenPayload{
		UserID:   "user-1",
		Username: "tester",
		Email:    "tester@example.com",
		Role:     role,
	})
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestAuthGate_PublicPathPassesWithoutCookie(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/api/jobs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("public path status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthGate_ProtectedPathWithoutCookie(t *testing.T) {
	app := testApp()
	for _, path := range []string{"/api/admin/jobs", "/api/user/me"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s without cookie: status = %d, want 401", path, resp.StatusCode)
		}
	}
}

func TestAuthGate_AdminPathWithUserRole(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/api/admin/jobs", nil)
	req.Header.Set("Cookie", "auth-token="+tokenFor(t, "USER"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("admin path with USER role: status = %d, want 403", resp.StatusCode)
	}
}

func TestAuthGate_AdminPathWithAdminRole(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/api/admin/jobs", nil)
	req.Header.Set("Cookie", "auth-token="+tokenFor(t, "ADMIN"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin path with ADMIN role: status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if want := `"role":"ADMIN"`; !strings.Contains(string(body), want) {
		t.Errorf("decoded role not injected for downstream handler: %s", body)
	}
	if want := `"userId":"user-1"`; !strings.Contains(string(body), want) {
		t.Errorf("decoded user id not injected for downstream handler: %s", body)
	}
}

func TestAuthGate_GarbageCookieIs401Not500(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/api/admin/jobs", nil)
	req.Header.Set("Cookie", "auth-token=garbage.token.value")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("garbage cookie: status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthGate_UserRoleCanReachMe(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/api/user/me", nil)
	req.Header.Set("Cookie", "auth-token="+tokenFor(t, "USER"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("/api/user/me with USER role: status = %d, want 200", resp.StatusCode)
	}
}
