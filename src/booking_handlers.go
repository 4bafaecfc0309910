package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"

	"gobhraman/src/catalog"
	"gobhraman/src/db"
	"gobhraman/src/lib"
	awslib "gobhraman/src/lib/aws"
	"gobhraman/src/lib/mailer"
	"gobhraman/src/models"
	"gobhraman/src/pricing"
	"gobhraman/src/types"
	"gobhraman/src/utils"
	"gobhraman/src/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// mustTrip is only called for trips a booking was just created against.
func mustTrip(id string) *catalog.Trip {
	trip, _ := catalog.Get(id)
	return trip
}

// bookingHandlers carries the public submission route; guests can book
// without an account, matching the storefront flow.
func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var userID *string
			if id := ctx.GetString("id"); id != "" {
				userID = &id
			}
			booking, err := utils.CreateBooking(&body, userID)
			if err != nil {
				var verr *workflow.ValidationError
				switch {
				case errors.As(err, &verr):
					ctx.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				case errors.Is(err, utils.ErrTripNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				case errors.Is(err, utils.ErrTripNotBookable):
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				default:
					// the write failed; nothing was persisted, caller retries
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				}
				return
			}

			go func() {
				if err := mailer.SendBookingReceived(booking); err != nil {
					log.Printf("Could not send booking notification [%s]: %s\n", booking.ID, err.Error())
				}
			}()

			advance := pricing.ComputeAdvance(mustTrip(booking.TripID), booking.NumTravelers)
			deeplink := lib.UpiDeepLink(lib.UpiPaymentDetails{
				Amount:          advance,
				TransactionNote: fmt.Sprintf("Advance for %s", booking.TripName),
				TransactionRef:  booking.ID,
			})
			ctx.JSON(http.StatusCreated, gin.H{
				"data":         booking,
				"upi_deeplink": deeplink,
				"advance":      advance,
			})
		}).
		GET("/bookings/:id/qr", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			conn := db.GetDb()
			var booking models.Booking
			if err := conn.
				Model(&models.Booking{}).
				Where("id = ?", params.ID).
				First(&booking).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
					return
				}
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch booking"})
				return
			}
			trip, ok := catalog.Get(booking.TripID)
			if !ok {
				// the booking outlived its catalog entry
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "trip is no longer offered"})
				return
			}
			advance := pricing.ComputeAdvance(trip, booking.NumTravelers)
			filepath, err := lib.UpiQRCode(lib.UpiPaymentDetails{
				Amount:          advance,
				TransactionNote: fmt.Sprintf("Advance for %s", booking.TripName),
				TransactionRef:  booking.ID,
			})
			if err != nil {
				log.Printf("Could not generate QR for booking [%s]: %s\n", booking.ID, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not generate payment QR"})
				return
			}
			ctx.FileAttachment(filepath, "upi-payment.jpeg")
		})
	return g
}

// myBookingHandlers is the authenticated "my bookings" surface.
func myBookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/my/bookings", func(ctx *gin.Context) {
			userID := ctx.GetString("id")
			bookings, err := utils.GetOwnBookings(userID)
			if err != nil {
				log.Printf("Could not load bookings for user [%s]: %s\n", userID, err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch bookings"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		PUT("/bookings/:id/payment", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.AttachPaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userID := ctx.GetString("id")
			if err := utils.AttachPayment(params.ID, userID, &body); err != nil {
				var verr *workflow.ValidationError
				switch {
				case errors.As(err, &verr):
					ctx.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				case errors.Is(err, gorm.ErrRecordNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				default:
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				}
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/bookings/:id/screenshot", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			file, err := ctx.FormFile("screenshot")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "screenshot file required"})
				return
			}
			src, err := file.Open()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "could not read screenshot"})
				return
			}
			defer src.Close()

			key := fmt.Sprintf("screenshots/%s/%s%s", params.ID, uuid.NewString(), path.Ext(file.Filename))
			contentType := file.Header.Get("Content-Type")
			if err := awslib.S3UploadScreenshot(ctx, key, src, contentType); err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to store screenshot"})
				return
			}

			userID := ctx.GetString("id")
			if err := utils.AttachPayment(params.ID, userID, &types.AttachPaymentRequestBody{ScreenshotKey: key}); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": gin.H{"screenshot_key": key}})
		})
	return g
}
