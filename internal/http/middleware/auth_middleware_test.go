package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/working2003/breedingo/domain"
	"github.com/working2003/breedingo/internal/mocks"
)

func setupRouter(tokenSvc domain.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokenSvc), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tokenSvc := &mocks.MockTokenService{
		ValidateFunc: func(token string) (*domain.TokenClaims, error) {
			switch token {
			case "good-token":
				return &domain.TokenClaims{UserID: 42}, nil
			case "expired-token":
				return nil, domain.ErrTokenExpired
			default:
				return nil, domain.ErrTokenInvalid
			}
		},
	}
	router := setupRouter(tokenSvc)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"bare token", "good-token", http.StatusUnauthorized},
		{"invalid token", "Bearer junk", http.StatusForbidden},
		{"expired token", "Bearer expired-token", http.StatusForbidden},
		{"valid token", "Bearer good-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_SetsUserID(t *testing.T) {
	tokenSvc := &mocks.MockTokenService{
		ValidateFunc: func(token string) (*domain.TokenClaims, error) {
			return &domain.TokenClaims{UserID: 7}, nil
		},
	}
	router := setupRouter(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"userId":7}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestAuthMiddleware_ExpiredMessage(t *testing.T) {
	tokenSvc := &mocks.MockTokenService{
		ValidateFunc: func(token string) (*domain.TokenClaims, error) {
			return nil, domain.ErrTokenExpired
		},
	}
	router := setupRouter(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"error":"Token expired"}` {
		t.Errorf("unexpected body %s", got)
	}
}
