package middlewares

import (
	"log"
	"net/http"
	"os"
	"strings"

	"gobhraman/src/db"
	"gobhraman/src/models"
	"gobhraman/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// jwtKey is read per request: the secret may come from .env, which is
// only loaded once main has run godotenv.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// AuthMiddleware resolves the bearer token to a user row and attaches
// the session to the request context. There is no ambient session state:
// every handler reads id/email/role from its own context.
func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	parts := strings.SplitN(bearerToken, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	reqToken := parts[1]
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey(), nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if !tkn.Valid {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	db := db.GetDb()
	var user models.User
	if err := db.Model(&models.User{}).Where("id = ?", claims.Subject).First(&user).Error; err != nil {
		log.Printf("error resolving session user: %s\n", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	ctx.Set("id", user.ID)
	ctx.Set("email", user.Email)
	ctx.Set("role", user.Role)
}

// AdminMiddleware gates the admin dashboard routes. Runs after
// AuthMiddleware.
func AdminMiddleware(ctx *gin.Context) {
	if ctx.GetString("role") != "admin" {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
		return
	}
}
