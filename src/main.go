package main

import (
	"log"
	"os"
	"path"
	"regexp"
	"time"

	"gobhraman/src/boot"
	"gobhraman/src/config"
	"gobhraman/src/middlewares"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api/v1"
)

// traveldate: an optional travel date must parse and not lie in the past.
var travelDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.Parse(config.TRAVEL_DATE_FORMAT, date)
	if err != nil {
		return false
	}
	return !datetime.Before(time.Now().Truncate(24 * time.Hour))
}

func initLogger() {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   path.Join(logDir, "gobhraman.log"),
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	})
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	return g.Group(apiPrefix)
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	tripHandlers(apiv1)
	bookingHandlers(apiv1)
	authHandlers(apiv1)
	return apiv1
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	return router
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()

	go cacheTrips()

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("traveldate", travelDateValidatorFunc)
	}

	publicRoutes(router)

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	{
		myBookingHandlers(authorized)
		authorized.POST("/auth/logout", signOutHandler)

		adminGroup := authorized.Group("")
		adminGroup.Use(middlewares.AdminMiddleware)
		adminHandlers(adminGroup)
	}

	if err := router.Run(":9090"); err != nil {
		log.Fatalf("Server error: %s\n", err.Error())
	}
}
