package middleware

import (
	"net/http"
	"os"
	"strings"

	"community-hub-api/config"
	"community-hub-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Actor types carried in session tokens
const (
	ActorUser  = "user"
	ActorAdmin = "admin"
)

type Claims struct {
	Email     string `json:"email"`
	ActorType string `json:"actor_type"` // user|admin
	AdminRole string `json:"admin_role,omitempty"`
	jwt.RegisteredClaims
}

func parseToken(c *gin.Context) (*Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return nil, false
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return nil, false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return nil, false
	}
	return claims, true
}

// AuthMiddleware validates the session token of either actor type.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok {
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("actorType", claims.ActorType)
		c.Set("adminRole", claims.AdminRole)

		c.Next()
	}
}

// AdminAuthMiddleware validates the session token and requires an
// admin actor whose account is still active.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok {
			c.Abort()
			return
		}

		if claims.ActorType != ActorAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		var admin models.Admin
		if err := config.DB.Where("email = ?", claims.Email).First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			c.Abort()
			return
		}
		if admin.AccountStatus != models.AccountStatusActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account is not active"})
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("actorType", ActorAdmin)
		c.Set("adminRole", admin.AdminRole)

		c.Next()
	}
}

// RequireAdminRole checks that the authenticated admin holds one of
// the given roles.
func RequireAdminRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("adminRole")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found"})
			c.Abort()
			return
		}

		role := current.(string)
		allowed := false
		for _, r := range roles {
			if role == r {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
