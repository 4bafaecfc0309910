package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"gobhraman/src/db"
	"gobhraman/src/lib"
	"gobhraman/src/models"
	"gobhraman/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func authHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	auth := g.Group("/auth")
	auth.
		POST("/register", func(ctx *gin.Context) {
			var body types.RegisterUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
			if err != nil {
				ctx.Status(http.StatusInternalServerError)
				return
			}
			user := models.User{
				ID:           uuid.NewString(),
				Name:         body.Name,
				Email:        body.Email,
				PasswordHash: string(hash),
				Role:         "user",
			}
			conn := db.GetDb()
			if err := conn.Create(&user).Error; err != nil {
				log.Printf("Could not create user [%s]: %s\n", body.Email, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not register account"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": user.ID, "email": user.Email}})
		}).
		POST("/login", func(ctx *gin.Context) {
			var body types.LoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			conn := db.GetDb()
			var user models.User
			if err := conn.Model(&models.User{}).Where("email = ?", body.Email).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
					return
				}
				ctx.Status(http.StatusInternalServerError)
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			claims := types.Claims{
				Email: user.Email,
				Role:  user.Role,
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   user.ID,
					IssuedAt:  jwt.NewNumericDate(time.Now()),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
				},
			}
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
			signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
			if err != nil {
				log.Printf("Could not sign token for [%s]: %s\n", user.Email, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			if rd := lib.GetRedisClient(); rd != nil {
				rd.Set(context.Background(), fmt.Sprintf("%s:token", user.ID), signed, 24*time.Hour)
			}
			ctx.JSON(http.StatusOK, gin.H{
				"token": signed,
				"user":  gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
			})
		})
	return g
}

// signOutHandler invalidates the redis session note; the JWT itself
// simply expires.
func signOutHandler(ctx *gin.Context) {
	userID := ctx.GetString("id")
	if rd := lib.GetRedisClient(); rd != nil {
		rd.Del(context.Background(), fmt.Sprintf("%s:token", userID))
	}
	ctx.Status(http.StatusNoContent)
}
