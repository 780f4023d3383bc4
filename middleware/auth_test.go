package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	userRepo "capetown/database/repository/user"
	"capetown/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserRepo struct{}

func (stubUserRepo) Create(ctx context.Context, user *models.User) (string, error) { return "", nil }
func (stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, userRepo.ErrNotFound
}
func (stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, userRepo.ErrNotFound
}
func (stubUserRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error { return nil }
func (stubUserRepo) UpdateFCMToken(ctx context.Context, id, fcmToken string) error   { return nil }
func (stubUserRepo) DeleteByID(ctx context.Context, id string) error                 { return nil }

func newAuthedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuthUserMiddleware(stubUserRepo{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	router := newAuthedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsNonBearerHeader(t *testing.T) {
	router := newAuthedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsMalformedToken(t *testing.T) {
	router := newAuthedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
