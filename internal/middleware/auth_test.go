package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"paisa/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupProtectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		userID := c.GetUint("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doAuthRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGenerateAccessToken(t *testing.T) {
	user := &models.User{Base: models.Base{ID: 42}, Email: "test@example.com"}

	token, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestValidateRefreshToken(t *testing.T) {
	user := &models.User{Base: models.Base{ID: 42}, Email: "test@example.com"}

	t.Run("accepts a refresh token", func(t *testing.T) {
		token, err := GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("failed to generate refresh token: %v", err)
		}

		claims, err := ValidateRefreshToken(token)
		if err != nil {
			t.Fatalf("expected valid refresh token: %v", err)
		}
		if claims.UserID != 42 {
			t.Errorf("expected user ID 42, got %d", claims.UserID)
		}
	})

	t.Run("rejects an access token", func(t *testing.T) {
		token, err := GenerateAccessToken(user)
		if err != nil {
			t.Fatalf("failed to generate access token: %v", err)
		}

		if _, err := ValidateRefreshToken(token); err == nil {
			t.Error("expected access token to be rejected")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := ValidateRefreshToken("not.a.token"); err == nil {
			t.Error("expected garbage token to be rejected")
		}
	})
}

func TestHashToken(t *testing.T) {
	hash := HashToken("some-token")
	if len(hash) != 64 {
		t.Errorf("expected SHA-256 hex digest (64 chars), got %d chars", len(hash))
	}
	if hash != HashToken("some-token") {
		t.Error("expected hashing to be deterministic")
	}
	if hash == HashToken("other-token") {
		t.Error("expected distinct tokens to hash differently")
	}
}

func TestAuthMiddleware(t *testing.T) {
	r := setupProtectedRouter()

	t.Run("accepts a valid token", func(t *testing.T) {
		user := &models.User{Base: models.Base{ID: 42}, Email: "test@example.com"}
		token, err := GenerateAccessToken(user)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := doAuthRequest(r, "Bearer "+token)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects a refresh token", func(t *testing.T) {
		user := &models.User{Base: models.Base{ID: 42}, Email: "test@example.com"}
		token, err := GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("failed to generate refresh token: %v", err)
		}

		rec := doAuthRequest(r, "Bearer "+token)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec := doAuthRequest(r, "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		rec := doAuthRequest(r, "Basic abc123")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		rec := doAuthRequest(r, "Bearer not.a.token")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
