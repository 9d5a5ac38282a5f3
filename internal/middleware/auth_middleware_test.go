package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

type fakeUserService struct {
	users map[string]*models.User
}

func (s *fakeUserService) GetOrCreate(ctx context.Context, userID, email, displayName string, emailVerified bool) (*models.User, bool, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", core.ErrUserNotFound, userID)
	}
	return u, false, nil
}

func (s *fakeUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUserNotFound, userID)
	}
	return u, nil
}

func (s *fakeUserService) List(ctx context.Context) ([]*models.User, error) {
	return nil, nil
}

func (s *fakeUserService) WatchUsers(ctx context.Context) <-chan db.Snapshot[*models.User] {
	ch := make(chan db.Snapshot[*models.User])
	close(ch)
	return ch
}

func newAdminTestRouter(users map[string]*models.User, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMiddleware(&auth.Client{}, &fakeUserService{users: users})

	router := gin.New()
	setIdentity := func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	}
	router.GET("/admin/ping", setIdentity, mw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("userRole")})
	})
	return router
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	users := map[string]*models.User{
		"uid-admin": {ID: "uid-admin", Role: models.RoleAdmin},
	}
	router := newAdminTestRouter(users, "uid-admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireAdminRejectsCustomerRole(t *testing.T) {
	users := map[string]*models.User{
		"uid-customer": {ID: "uid-customer", Role: models.RoleCustomer},
	}
	router := newAdminTestRouter(users, "uid-customer")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", w.Code)
	}
}

func TestRequireAdminRejectsUnknownProfile(t *testing.T) {
	router := newAdminTestRouter(map[string]*models.User{}, "uid-ghost")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for missing profile, got %d", w.Code)
	}
}

func TestRequireAdminRejectsMissingIdentity(t *testing.T) {
	router := newAdminTestRouter(map[string]*models.User{}, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", w.Code)
	}
}

func TestRequireVerified(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMiddleware(&auth.Client{}, &fakeUserService{})

	router := gin.New()
	router.GET("/verified", func(c *gin.Context) {
		c.Set("userEmailVerified", c.Query("v") == "true")
		c.Next()
	}, mw.RequireVerified(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/verified?v=true", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for verified account, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/verified?v=false", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unverified account, got %d", w.Code)
	}
}
