package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"gobhraman/src/catalog"
	"gobhraman/src/config"
	"gobhraman/src/lib"
	"gobhraman/src/pricing"
	"gobhraman/src/types"
	"gobhraman/src/utils"

	"github.com/gin-gonic/gin"
)

const tripsCacheKey = "catalog:trips"

// cacheTrips warms the redis cache with the active catalog and returns
// it. The catalog is static, so the cached copy never goes stale; the
// TTL only bounds memory on an idle instance.
func cacheTrips() []catalog.Trip {
	active := catalog.Active()
	rd := lib.GetRedisClient()
	if rd == nil {
		return active
	}
	payload, err := json.Marshal(active)
	if err != nil {
		log.Printf("Could not marshal catalog for cache: %s\n", err.Error())
		return active
	}
	if err := rd.Set(context.Background(), tripsCacheKey, payload, 12*time.Hour).Err(); err != nil {
		log.Printf("Could not cache catalog: %s\n", err.Error())
	}
	return active
}

func tripHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/trips", func(ctx *gin.Context) {
			rd := lib.GetRedisClient()
			if rd != nil {
				if payload, err := rd.Get(ctx, tripsCacheKey).Bytes(); err == nil {
					ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
					return
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": cacheTrips()})
		}).
		GET("/trips/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			trip, ok := catalog.Get(params.ID)
			if !ok {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "trip not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": trip})
		}).
		GET("/trips/:id/quote", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			trip, ok := catalog.Get(params.ID)
			if !ok {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "trip not found"})
				return
			}
			travelers, err := strconv.Atoi(ctx.DefaultQuery("travelers", "1"))
			if err != nil || travelers < pricing.MIN_TRAVELERS || travelers > pricing.MAX_TRAVELERS {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "travelers must be between 1 and 10"})
				return
			}
			pickup := catalog.PickupPoint(ctx.Query("pickup"))
			if config.StrictPickup() {
				if _, err := pricing.ResolveUnitPriceStrict(trip, pickup); err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
			}
			quote := pricing.QuoteTrip(trip, pickup, travelers)
			ctx.JSON(http.StatusOK, gin.H{"data": types.QuoteResponse{
				TripID:    trip.ID,
				Pickup:    string(pickup),
				Travelers: travelers,
				UnitPrice: quote.UnitPrice,
				Total:     quote.Total,
				Advance:   quote.Advance,
				Balance:   quote.Balance,
				Display:   pricing.FormatINR(quote.Total),
			}})
		}).
		POST("/trips/:id/interest", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateLeadRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			body.TripID = params.ID
			var userID *string
			if id := ctx.GetString("id"); id != "" {
				userID = &id
			}
			lead, err := utils.CreateLead(&body, userID)
			if err != nil {
				status := http.StatusUnprocessableEntity
				if errors.Is(err, utils.ErrTripNotFound) {
					status = http.StatusNotFound
				}
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": lead})
		})
	return g
}
