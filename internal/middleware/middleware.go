package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization header is required",
				"error":   "Missing authorization token",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid authorization header format",
				"error":   "Use format: Bearer {token}",
			})
			c.Abort()
			return
		}

		tokenString := parts[1]
		jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid token claims",
				"error":   "Token validation failed",
			})
			c.Abort()
			return
		}

		userID, okID := claims["user_id"].(float64)
		username, okName := claims["username"].(string)
		isStaff, okStaff := claims["is_staff"].(bool)
		if !okID || !okName || !okStaff {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid token claims",
				"error":   "Token is missing required claims",
			})
			c.Abort()
			return
		}

		c.Set("user_id", uint(userID))
		c.Set("username", username)
		c.Set("is_staff", isStaff)
		c.Next()
	}
}

// StaffRequired gates routes reserved for advisors.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_staff") {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Staff access required",
				"error":   "This endpoint is reserved for staff members",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserRequired gates the self-service routes staff members must not use.
func UserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool("is_staff") {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Self-service access only",
				"error":   "Staff members must use the staff endpoints",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
