package main

import (
	"errors"
	"log"
	"net/http"

	"gobhraman/src/admin"
	"gobhraman/src/db"
	awslib "gobhraman/src/lib/aws"
	"gobhraman/src/lib/mailer"
	"gobhraman/src/models"
	"gobhraman/src/pricing"
	"gobhraman/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// reconService is a var so tests can swap in a stub presigner.
var reconService = func() *admin.Service {
	return admin.NewService(db.GetDb(), awslib.S3Presigner{})
}

// adminHandlers is the reconciliation dashboard surface. Every mutation
// is followed by a client re-fetch; these routes never return patched
// local state.
func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/admin/bookings", func(ctx *gin.Context) {
			svc := reconService()
			res := svc.LoadAll(ctx)
			if res.BookingsErr != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch bookings"})
				return
			}
			bookings := admin.FilterBookings(res.Bookings, ctx.Query("search"), ctx.DefaultQuery("status", "all"))
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/admin/leads", func(ctx *gin.Context) {
			svc := reconService()
			res := svc.LoadAll(ctx)
			if res.LeadsErr != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch leads"})
				return
			}
			leads := admin.FilterLeads(res.Leads, ctx.Query("search"), ctx.DefaultQuery("status", "all"))
			ctx.JSON(http.StatusOK, gin.H{"data": leads, "count": len(leads)})
		}).
		GET("/admin/stats", func(ctx *gin.Context) {
			svc := reconService()
			res := svc.LoadAll(ctx)
			if res.BookingsErr != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch bookings"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": admin.Stats(res.Bookings)})
		}).
		GET("/admin/bookings/:id", func(ctx *gin.Context) {
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
			payload := gin.H{
				"data":           booking,
				"payment_status": pricing.PaymentStatus(&booking),
			}
			if booking.PaymentScreenshotKey != nil {
				svc := reconService()
				url, err := svc.ScreenshotURL(ctx, *booking.PaymentScreenshotKey)
				if err != nil {
					// degrade, the rest of the detail view still renders
					log.Printf("Could not presign screenshot for booking [%s]: %s\n", booking.ID, err.Error())
					payload["screenshot_url"] = nil
					payload["screenshot_error"] = "cannot load"
				} else {
					payload["screenshot_url"] = url
				}
			}
			ctx.JSON(http.StatusOK, payload)
		}).
		PUT("/admin/bookings/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			svc := reconService()
			if err := svc.SetBookingStatus(ctx, params.ID, body.Status, body.Notes); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
					return
				}
				log.Printf("Could not update booking [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to update booking status"})
				return
			}

			conn := db.GetDb()
			var booking models.Booking
			if err := conn.Model(&models.Booking{}).Where("id = ?", params.ID).First(&booking).Error; err == nil {
				go func() {
					if err := mailer.SendBookingStatusChanged(&booking); err != nil {
						log.Printf("Could not send status notification [%s]: %s\n", booking.ID, err.Error())
					}
				}()
			}
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/admin/leads/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateLeadStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			svc := reconService()
			if err := svc.SetLeadStatus(ctx, params.ID, body.Status); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
					return
				}
				log.Printf("Could not update lead [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to update lead status"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
