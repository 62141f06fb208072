package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

func runGuard(t *testing.T, mw echo.MiddlewareFunc, viewer interface{}) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if viewer != nil {
		c.Set(ViewerContextKey, viewer)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestRequireEditor_AllowsRegularUser(t *testing.T) {
	rec, called := runGuard(t, RequireEditor(), domain.Viewer{ID: "u1"})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("regular user should pass, got %d", rec.Code)
	}
}

func TestRequireEditor_BlocksViewerAccount(t *testing.T) {
	rec, called := runGuard(t, RequireEditor(), domain.Viewer{ID: "u1", IsViewer: true})
	if called {
		t.Fatalf("next handler must not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireEditor_MissingViewer(t *testing.T) {
	rec, called := runGuard(t, RequireEditor(), nil)
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("missing viewer must be rejected, got %d", rec.Code)
	}
}

func TestRequireManager(t *testing.T) {
	rec, called := runGuard(t, RequireManager(), domain.Viewer{ID: "u1", IsManager: true})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("manager should pass, got %d", rec.Code)
	}

	rec, called = runGuard(t, RequireManager(), domain.Viewer{ID: "u1"})
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("regular user must be rejected, got %d", rec.Code)
	}

	rec, called = runGuard(t, RequireManager(), domain.Viewer{ID: "u1", IsSuperuser: true})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("superuser should pass, got %d", rec.Code)
	}
}
